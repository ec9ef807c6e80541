package app

import (
	"github.com/apex/log"

	"game-of-life/internal/session"
)

// Command is a frontend-independent user action.
type Command int

// Commands shared by the window and terminal frontends. Each maps to one
// session operation in Execute.
const (
	CmdNone        Command = iota // unbound key
	CmdTogglePause                // run or pause
	CmdStep                       // advance one generation while paused
	CmdClear                      // kill every cell
	CmdRandomize                  // reseed at the current density
	CmdToggleTheme                // switch light and dark
	CmdToggleGrid                 // show or hide grid lines
	CmdToggleStats                // show or hide the population chart
	CmdNextPattern                // load the next preset
	CmdPrevPattern                // load the previous preset
	CmdZoomIn
	CmdZoomOut
	CmdSave // write to -save
	CmdLoad // read from -load
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:        "none",
	CmdTogglePause: "toggle-pause",
	CmdStep:        "step",
	CmdClear:       "clear",
	CmdRandomize:   "randomize",
	CmdToggleTheme: "toggle-theme",
	CmdToggleGrid:  "toggle-grid",
	CmdToggleStats: "toggle-stats",
	CmdNextPattern: "next-pattern",
	CmdPrevPattern: "prev-pattern",
	CmdZoomIn:      "zoom-in",
	CmdZoomOut:     "zoom-out",
	CmdSave:        "save",
	CmdLoad:        "load",
	CmdQuit:        "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ZoomStep is the zoom change applied per wheel notch or +/- key.
const ZoomStep = 0.1

// CommandForRune maps a typed character to a command. ctrl reports whether
// Control was held; only s and o use it.
func CommandForRune(r rune, ctrl bool) Command {
	if ctrl {
		switch r {
		case 's', 'S':
			return CmdSave
		case 'o', 'O':
			return CmdLoad
		}
		return CmdNone
	}
	switch r {
	case ' ':
		return CmdTogglePause
	case 'n', 'N', 's', 'S':
		return CmdStep
	case 'c', 'C':
		return CmdClear
	case 'r', 'R':
		return CmdRandomize
	case 't', 'T':
		return CmdToggleTheme
	case 'g', 'G':
		return CmdToggleGrid
	case 'h', 'H':
		return CmdToggleStats
	case ']':
		return CmdNextPattern
	case '[':
		return CmdPrevPattern
	case '+', '=':
		return CmdZoomIn
	case '-':
		return CmdZoomOut
	case 'q', 'Q':
		return CmdQuit
	}
	return CmdNone
}

// Controller applies commands to a session. Save and load use the paths from
// the -save and -load flags.
type Controller struct {
	sess     *session.Session
	savePath string
	loadPath string
	log      log.Interface
}

// NewController binds a session to the configured file paths. A nil logger
// uses the default apex logger.
func NewController(sess *session.Session, cfg *Config, logger log.Interface) *Controller {
	if logger == nil {
		logger = log.Log
	}
	c := &Controller{sess: sess, log: logger}
	if cfg != nil {
		c.savePath = cfg.Save
		c.loadPath = cfg.Load
	}
	if c.loadPath == "" {
		c.loadPath = c.savePath
	}
	return c
}

// Session returns the controlled session.
func (c *Controller) Session() *session.Session { return c.sess }

// Execute runs cmd and reports whether the frontend should keep going.
func (c *Controller) Execute(cmd Command) bool {
	s := c.sess
	switch cmd {
	case CmdNone:
	case CmdTogglePause:
		s.TogglePause()
	case CmdStep:
		s.Step()
	case CmdClear:
		s.Clear()
	case CmdRandomize:
		s.Randomize()
	case CmdToggleTheme:
		s.ToggleTheme()
	case CmdToggleGrid:
		s.ToggleGridLines()
	case CmdToggleStats:
		s.ToggleStats()
	case CmdNextPattern:
		s.CyclePattern(1)
	case CmdPrevPattern:
		s.CyclePattern(-1)
	case CmdZoomIn:
		s.AdjustZoom(ZoomStep)
	case CmdZoomOut:
		s.AdjustZoom(-ZoomStep)
	case CmdSave:
		if c.savePath == "" {
			s.SetStatus("No save path configured (use -save)")
			break
		}
		// Errors are already on the status line and in the log.
		_ = s.Save(c.savePath)
	case CmdLoad:
		if c.loadPath == "" {
			s.SetStatus("No load path configured (use -load)")
			break
		}
		_ = s.Load(c.loadPath)
	case CmdQuit:
		c.log.WithField("generation", s.Generation()).Info("quit")
		return false
	}
	if cmd != CmdNone {
		c.log.WithField("command", cmd.String()).Debug("command")
	}
	return true
}
