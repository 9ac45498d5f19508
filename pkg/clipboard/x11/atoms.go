package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	clipboard "github.com/labi-le/clipwire/pkg/clipboard/internal/core"
)

type atoms struct {
	Primary    xproto.Atom
	Clipboard  xproto.Atom
	Targets    xproto.Atom
	Timestamp  xproto.Atom
	Utf8String xproto.Atom
	String     xproto.Atom
	Incr       xproto.Atom
	// Landing property for ConvertSelection replies.
	Property xproto.Atom

	// Pre-computed destination list for DestBoth; slices of it back every
	// destAtoms result so copies never rebuild it.
	both [2]xproto.Atom
}

func internAtoms(c *xgb.Conn) (*atoms, error) {
	names := []string{
		"CLIPBOARD", "TARGETS", "TIMESTAMP", "UTF8_STRING", "INCR",
		"CLIPWIRE_SELECTION",
	}

	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(c, false, uint16(len(name)), name)
	}

	interned := make([]xproto.Atom, len(names))
	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return nil, err
		}
		interned[i] = reply.Atom
	}

	a := &atoms{
		Primary:    xproto.AtomPrimary,
		Clipboard:  interned[0],
		Targets:    interned[1],
		Timestamp:  interned[2],
		Utf8String: interned[3],
		Incr:       interned[4],
		Property:   interned[5],
		String:     xproto.AtomString,
	}
	a.both = [2]xproto.Atom{a.Primary, a.Clipboard}
	return a, nil
}

// X11 has both selections unconditionally; Default resolves to PRIMARY,
// matching what terminal emulators treat as the default paste buffer.
func (a *atoms) sourceAtom(source clipboard.Source) xproto.Atom {
	switch source {
	case clipboard.SourceClipboard:
		return a.Clipboard
	default:
		return a.Primary
	}
}

func (a *atoms) destAtoms(dest clipboard.Dest) []xproto.Atom {
	switch dest {
	case clipboard.DestClipboard:
		return a.both[1:]
	case clipboard.DestBoth:
		return a.both[:]
	default:
		return a.both[:1]
	}
}

func (a *atoms) name(atom xproto.Atom) string {
	switch atom {
	case a.Primary:
		return "PRIMARY"
	case a.Clipboard:
		return "CLIPBOARD"
	default:
		return "?"
	}
}
