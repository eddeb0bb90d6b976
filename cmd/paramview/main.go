package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/event"
	"github.com/yk35/revitobjects/store"
)

func main() {
	var (
		docFile     = flag.String("doc", "", "Path to document snapshot (JSON)")
		elementID   = flag.Int64("element", 0, "Show a single element by id")
		list        = flag.Bool("list", false, "List elements and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *docFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: paramview -doc <snapshot.json> [-list] [-element id]")
		fmt.Fprintln(os.Stderr, "       paramview -doc <snapshot.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			event.SetLogger(logger.Named("event"))
		}
	}

	if *interactive {
		if err := runInteractive(*docFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*docFile, *elementID, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(docFile string, elementID int64, listOnly bool) error {
	doc, err := loadDocument(docFile)
	if err != nil {
		return err
	}

	fmt.Printf("Document: %s\n", doc.Title())
	fmt.Printf("Elements: %d\n", len(doc.Elements()))

	if elementID != 0 {
		el, err := doc.ElementByID(revitobjects.ElementID(elementID))
		if err != nil {
			return err
		}
		printElement(el.(*store.Element))
		return nil
	}

	for _, el := range doc.Elements() {
		if listOnly {
			fmt.Printf("  element %d (%d slots)\n", el.ID(), len(el.Slots()))
			continue
		}
		printElement(el)
	}
	return nil
}

func printElement(el *store.Element) {
	fmt.Printf("\nelement %d\n", el.ID())
	for _, s := range el.Slots() {
		fmt.Printf("  %-24s %-12s %s\n", s.Name(), s.Kind(), s.Display())
	}
}

func loadDocument(path string) (*store.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	doc, err := store.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return doc, nil
}
