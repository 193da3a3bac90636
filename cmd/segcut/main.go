/*
Command segcut is a small CLI around the jieba segmentation package.

It loads a dictionary (the embedded default, or a file given with
-dict), reads text from -text or stdin, and prints the cut result of
each input line on one output line, tokens separated by two spaces,
optionally with part-of-speech tags.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/hanzoseg/jieba"
	"github.com/hanzoseg/jieba/internal/seglog"
	"github.com/hanzoseg/jieba/pkg/config"
)

func main() {
	dictPath := flag.String("dict", "", "path to a user dictionary to merge over the embedded default")
	text := flag.String("text", "", "text to cut (reads stdin if omitted)")
	mode := flag.String("mode", "cut", "cut mode: cut, all, search")
	hmm := flag.Bool("hmm", true, "enable HMM recognition of unseen words")
	tag := flag.Bool("tag", false, "print part-of-speech tags instead of bare tokens")
	configPath := flag.String("config", "", "path to a config.toml file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Init(*configPath)
		if err != nil {
			log.Fatalf("segcut: config: %v", err)
		}
		cfg = loaded
	}

	cutter := jieba.NewDefaultCutter(
		jieba.WithLogger(seglog.Default("segcut")),
		jieba.WithRouteCache(cfg.Cutter.CacheSize),
	)

	if *dictPath != "" {
		if err := cutter.Dictionary().LoadDictFile(*dictPath); err != nil {
			log.Fatalf("segcut: loading %s: %v", *dictPath, err)
		}
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})

	run := func(line string) {
		printResult(cutter, line, *mode, *hmm, *tag, style)
	}

	if *text != "" {
		run(*text)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		run(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("segcut: reading stdin: %v", err)
	}
}

func printResult(cutter *jieba.Cutter, line, mode string, hmm, tag bool, style lipgloss.Style) {
	if tag {
		for _, t := range cutter.Tag(line, hmm) {
			fmt.Printf("%s/%s  ", style.Render(t.Text), t.Tag)
		}
		fmt.Println()
		return
	}

	var words []string
	switch mode {
	case "all":
		words = cutter.CutAll(line)
	case "search":
		words = cutter.CutForSearch(line, hmm)
	default:
		words = cutter.Cut(line, hmm)
	}
	for _, w := range words {
		fmt.Print(style.Render(w), "  ")
	}
	fmt.Println()
}
