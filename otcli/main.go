package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/cbreeden/fontkit"
	"github.com/cbreeden/fontkit/internal/fontload"
	"github.com/cbreeden/fontkit/ot"
	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontkit.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.fontkit.cli":  "Info",
		"trace.fontkit.ot":   "Error",
		"trace.fontkit.wire": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load, a file path or one of "+strings.Join(fontload.GoFontNames(), ", "))
	confpath := flag.String("config", "", "Configuration file (TOML)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)            // will set the correct level later
	pterm.Info.Println("Welcome to fontkit OpenType CLI") // colored welcome message
	//
	// collect configuration: defaults < config file < flags
	cfg := defaultConfig()
	if *confpath != "" {
		var err error
		if cfg, err = loadConfig(*confpath, cfg); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.TraceLevel = *tlevel
		case "font":
			cfg.Font = *fontname
		}
	})
	//
	// set up REPL
	repl, err := readline.New("ot > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl, conf: cfg}
	//
	// load font to use
	if err := intp.loadFont(cfg.Font); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	if err := setTraceLevel(cfg.TraceLevel); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", cfg.TraceLevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font  *fontkit.ScalableFont
	repl  *readline.Instance
	conf  cliConfig
	table ot.Tag // table selected by the last 'table' command, or 0
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	if intp.table == 0 {
		return fmt.Sprintf("( font=%s )", intp.font.Fontname)
	}
	return fmt.Sprintf("( font=%s table=%s )", intp.font.Fontname, intp.table)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code   int
	arg    string
	format string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	TABLES
	TABLE
	HEADER
	MAXP
	HEAD
	HHEA
	HMTX
	NAMES
	CMAP
	GLYPH
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"tables": TABLES,
	"table":  TABLE,
	"header": HEADER,
	"maxp":   MAXP,
	"head":   HEAD,
	"hhea":   HHEA,
	"hmtx":   HMTX,
	"names":  NAMES,
	"cmap":   CMAP,
	"glyph":  GLYPH,
}

var opNames = []string{
	"quit",
	"help",
	"tables",
	"table",
	"header",
	"maxp",
	"head",
	"hhea",
	"hmtx",
	"names",
	"cmap",
	"glyph",
}

// parseCommand splits a line into steps, e.g. "header table:head hmtx:36".
// Unknown commands are turned into a request for help.
func (intp *Intp) parseCommand(line string) (*Command, error) {
	command := &Command{}
	for i := range command.op {
		command.op[i].code = NOOP
	}
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":") // e.g.  "table:head" or "hmtx:36" or "help:dispatch"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].format = getOptArg(c, 2)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], command.op[i].arg)
		}
	}
	return command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	TABLES: tablesOp,
	TABLE:  tableOp,
	HEADER: headerOp,
	MAXP:   maxpOp,
	HEAD:   headOp,
	HHEA:   hheaOp,
	HMTX:   hmtxOp,
	NAMES:  namesOp,
	CMAP:   cmapOp,
	GLYPH:  glyphOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

// loadFont loads a font from a file or, by name, one of the Go fonts.
func (intp *Intp) loadFont(fontname string) (err error) {
	intp.font, err = loadFont(fontname)
	if err == nil {
		pterm.Printf("font tables: %v\n", intp.font.OT.TableTags())
		if missing := intp.font.OT.MissingTables(); len(missing) > 0 {
			pterm.Warning.Printf("font misses required tables %v\n", missing)
		}
	}
	return
}

func loadFont(fontname string) (*fontkit.ScalableFont, error) {
	if fontname == "" {
		return nil, errors.New("no font given")
	}
	if slices.Contains(fontload.GoFontNames(), fontname) {
		gofont, err := fontload.LoadGoFont(fontname)
		if err != nil {
			return nil, err
		}
		f, err := fontkit.ParseOpenTypeFont(gofont.Binary)
		if err != nil {
			return nil, err
		}
		f.Filepath = gofont.Filepath
		tracer().Infof("loaded Go font = %s", f.Fontname)
		return f, nil
	}
	f, err := fontkit.LoadOpenTypeFont(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return nil, err
	}
	tracer().Infof("loaded and parsed font = %s", f.Fontname)
	return f, nil
}

// ----------------------------------------------------------------------

var ErrNoFont = errors.New("no font loaded")

func (intp *Intp) checkFont() (*ot.Font, error) {
	if intp.font == nil || intp.font.OT == nil {
		return nil, ErrNoFont
	}
	return intp.font.OT, nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
