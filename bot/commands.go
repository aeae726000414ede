package bot

import (
	"strings"
	"unicode/utf8"

	"github.com/gpng/quip-bot/models"
	"go.uber.org/zap"
)

// admin commands
const (
	addPrefix    = "/add"
	listCommand  = "/list"
	removePrefix = "/rm"
)

// Matcher reports whether text selects a command and extracts its argument
type Matcher func(text string) (arg string, ok bool)

type command struct {
	name  string
	match Matcher
	run   func(d *Dispatcher, inv *invocation, arg string) Result
}

// commandTable is evaluated top to bottom, first match wins
func commandTable() []command {
	return []command{
		{name: addPrefix, match: HasPrefixDropping(addPrefix, 5), run: (*Dispatcher).addQuip},
		{name: listCommand, match: Exact(listCommand), run: (*Dispatcher).listQuips},
		{name: removePrefix, match: HasPrefixDropping(removePrefix, 3), run: (*Dispatcher).removeQuip},
	}
}

// Exact matches text equal to s
func Exact(s string) Matcher {
	return func(text string) (string, bool) {
		return "", text == s
	}
}

// HasPrefixDropping matches text starting with prefix that is at least n
// characters long; the argument is text minus its first n characters.
func HasPrefixDropping(prefix string, n int) Matcher {
	return func(text string) (string, bool) {
		if !strings.HasPrefix(text, prefix) || utf8.RuneCountInString(text) < n {
			return "", false
		}
		return dropRunes(text, n), true
	}
}

func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// isAdmin is the only authorization there is
func (d *Dispatcher) isAdmin(msg *models.Message) bool {
	return msg.IsPrivate() && msg.From.ID == d.settings.AdminID
}

func (d *Dispatcher) route(msg *models.Message, text string) (command, string, bool) {
	if !d.isAdmin(msg) {
		return command{}, "", false
	}
	for _, cmd := range d.commands {
		if arg, ok := cmd.match(text); ok {
			return cmd, arg, true
		}
	}
	return command{}, "", false
}

func (d *Dispatcher) addQuip(inv *invocation, text string) Result {
	quip := models.Quip{ID: NewQuipID(d.rnd), Text: text}

	if err := d.store.Put(inv.ctx, quip); err != nil {
		inv.fail(stageStorePut, err, "error storing quip")
	} else {
		inv.logger.Info("quip added", zap.String("quip_id", quip.ID))
	}

	// confirmed even when the write failed
	inv.send(MsgQuipAdded, "")

	return ResultQuipAdded
}

func (d *Dispatcher) listQuips(inv *invocation, _ string) Result {
	quips, err := d.store.Scan(inv.ctx)
	if err != nil {
		inv.fail(stageStoreScan, err, "error listing quips")
		return ResultAborted
	}

	text := MsgNoQuips
	if len(quips) > 0 {
		text = MsgQuipList(quips)
	}
	inv.send(text, ParseModeMarkdownV2)

	return ResultQuipsListed
}

func (d *Dispatcher) removeQuip(inv *invocation, id string) Result {
	if err := d.store.Delete(inv.ctx, id); err != nil {
		inv.fail(stageStoreDelete, err, "error deleting quip")
		return ResultAborted
	}
	inv.logger.Info("quip removed", zap.String("quip_id", id))

	inv.send(MsgQuipRemoved, "")

	return ResultQuipRemoved
}
