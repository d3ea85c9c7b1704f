package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tl/launch"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

type options struct {
	fgName        string
	bgName        string
	historyPath   string
	bookmarksPath string
}

// appState holds everything the dispatcher mutates: the live buffer and the
// three auxiliary subsystems. It is owned by the single event-loop
// goroutine; nothing here is shared.
type appState struct {
	line  *launch.Line
	comp  *launch.Completion
	hist  *launch.History
	marks *launch.Bookmarks
	clip  launch.Clipboard
	err   error
}

type sysClipboard struct{}

func (sysClipboard) GetText() (string, error) {
	return clipboard.ReadAll()
}

func main() {
	opts := options{fgName: "black", bgName: "white"}

	cmd := &cobra.Command{
		Use:           "tl",
		Short:         "Single-line command launcher with completion, history, and bookmarks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.fgName, "fg", opts.fgName, "foreground color name")
	cmd.Flags().StringVar(&opts.bgName, "bg", opts.bgName, "background color name")
	cmd.Flags().StringVar(&opts.historyPath, "history", "", "history file (default ~/.config/tl/history)")
	cmd.Flags().StringVar(&opts.bookmarksPath, "bookmarks", "", "bookmarks file (default ~/.config/tl/bookmarks.yml)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	fg, err := resolveColor(opts.fgName)
	if err != nil {
		return err
	}
	bg, err := resolveColor(opts.bgName)
	if err != nil {
		return err
	}

	historyPath, bookmarksPath := opts.historyPath, opts.bookmarksPath
	if historyPath == "" || bookmarksPath == "" {
		dir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		if historyPath == "" {
			historyPath = filepath.Join(dir, "history")
		}
		if bookmarksPath == "" {
			bookmarksPath = filepath.Join(dir, "bookmarks.yml")
		}
	}

	hist, err := launch.OpenHistory(historyPath)
	if err != nil {
		return err
	}
	marks, err := launch.LoadBookmarks(bookmarksPath)
	if err != nil {
		return err
	}

	app := &appState{
		line:  launch.NewLine(),
		comp:  launch.NewCompletion(launch.PathCorpus()),
		hist:  hist,
		marks: marks,
		clip:  sysClipboard{},
	}

	command, submitted, err := editLoop(app, fg, bg)
	if err != nil {
		return err
	}
	if !submitted {
		return nil
	}
	return spawn(command)
}

// editLoop owns the screen for its whole lifetime: draw, wait for one
// event, dispatch, repeat. It returns the submitted command, or
// submitted=false when the user bailed out with Escape.
func editLoop(app *appState, fg, bg tcell.Color) (command string, submitted bool, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return "", false, fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return "", false, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	for {
		drawLaunch(screen, app.line, fg, bg)
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch handleKeyEvent(app, translateKey(e)) {
			case actionSubmit:
				return app.line.String(), true, nil
			case actionQuit:
				return "", false, app.err
			}
		}
	}
}

func resolveColor(name string) (tcell.Color, error) {
	if c, ok := tcell.ColorNames[strings.ToLower(name)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tl"), nil
}
