package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/unicharts"
	"github.com/npillmayer/unicharts/catalog"
	"github.com/pterm/pterm"
)

// tracer traces with key 'unicharts'
func tracer() tracing.Trace {
	return tracing.Select("unicharts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.unicharts": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	blocksFile := flag.String("blocks", "", "Blocks.txt file to load")
	fontsFile := flag.String("fonts", "", "YAML file of font family overrides")
	seed := flag.Uint64("seed", 0, "Seed for random sampling (0 for unseeded)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)          // will set the correct level later
	pterm.Info.Println("Welcome to the Unicode charts CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("uc > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load the catalog data
	opts := []unicharts.Option{
		unicharts.WithBlocksFile(*blocksFile),
		unicharts.WithFontOverrides(*fontsFile),
		unicharts.WithMode(catalog.Random),
	}
	if *seed != 0 {
		opts = append(opts, unicharts.WithSeed(*seed))
	}
	if err := intp.load(unicharts.NewOptions(opts...)); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
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
	gen   *unicharts.Generator
	repl  *readline.Instance
	block string // current block, set by 'block'
}

func (intp *Intp) String() string {
	if intp == nil || intp.block == "" {
		return "( no block )"
	}
	return fmt.Sprintf("( block=%s )", intp.block)
}

func (intp *Intp) load(opts unicharts.Options) (err error) {
	if intp.gen, err = unicharts.NewGenerator(opts); err == nil {
		pterm.Printf("%d blocks, %d chapters\n", intp.gen.Table().Len(), len(intp.gen.Chapters()))
	}
	return
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
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single interpreter command.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	INFO
	BLOCK
	SAMPLE
	RANDOM
	FIND
	CHAPTERS
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"info":     INFO,
	"block":    BLOCK,
	"sample":   SAMPLE,
	"random":   RANDOM,
	"find":     FIND,
	"chapters": CHAPTERS,
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	INFO:     infoOp,
	BLOCK:    blockOp,
	SAMPLE:   sampleOp,
	RANDOM:   randomOp,
	FIND:     findOp,
	CHAPTERS: chaptersOp,
}

// parseCommand splits a line into a command word and its argument.
// Unknown commands show the help text.
func parseCommand(line string) *Op {
	word, arg, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		code = HELP
		arg = ""
	}
	op := &Op{code: code, arg: strings.TrimSpace(arg)}
	if op.arg == "" {
		tracer().Debugf("command %s", word)
	} else {
		tracer().Debugf("command %s: '%s'", word, op.arg)
	}
	return op
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}
