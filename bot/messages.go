package bot

import (
	"strings"

	"github.com/gpng/quip-bot/models"
)

// messages
const (
	MsgQuipAdded   = "message added successfully"
	MsgNoQuips     = "There are no items"
	MsgQuipRemoved = "Item deleted successfully."
	MsgListHeader  = "*Items*"
)

// ParseModeMarkdownV2 is telegram's MarkdownV2 formatting mode
const ParseModeMarkdownV2 = "MarkdownV2"

var markdownV2Escaper = strings.NewReplacer(
	`\`, `\\`, "_", `\_`, "*", `\*`, "[", `\[`, "]", `\]`, "(", `\(`, ")", `\)`,
	"~", `\~`, "`", "\\`", ">", `\>`, "#", `\#`, "+", `\+`, "-", `\-`, "=", `\=`,
	"|", `\|`, "{", `\{`, "}", `\}`, ".", `\.`, "!", `\!`,
)

func escapeMarkdownV2(s string) string {
	return markdownV2Escaper.Replace(s)
}

// MsgQuipList renders every quip with a ready to copy remove command
func MsgQuipList(quips []models.Quip) string {
	var sb strings.Builder
	sb.WriteString(MsgListHeader)
	for _, q := range quips {
		sb.WriteString("\n" + removePrefix + escapeMarkdownV2(q.ID) + " " + escapeMarkdownV2(q.Text))
	}
	return sb.String()
}
