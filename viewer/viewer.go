// Package viewer implements the document inspection commands: outline and
// document info dumps over any registered engine backend.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"docview/document"
	"docview/engine"
	"docview/state"
	"docview/strfmt"
	"docview/utils/debug"
)

// openEngine builds backend options from configuration and command line and
// opens the document.
func openEngine(ctx context.Context, src string, cmd *cli.Command) (engine.Engine, error) {
	env := state.EnvFromContext(ctx)

	opts := &engine.Options{
		Log:      env.Log,
		CodePage: env.Cfg.Viewer.ZipCodePage,
		Password: string(env.Cfg.Viewer.PDFPassword),
	}
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		opts.CodePage = cp
	}
	return engine.Open(ctx, src, opts)
}

// Toc prints the document outline. Page numbers of every entry are checked
// against their destinations, mismatches are logged and reported in the
// exit status.
func Toc(ctx context.Context, cmd *cli.Command) (rerr error) {
	env := state.EnvFromContext(ctx)
	log := env.Log

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input file specified")
	}

	e, err := openEngine(ctx, src, cmd)
	if err != nil {
		return err
	}
	defer func() {
		if er := e.Close(); er != nil {
			rerr = multierr.Append(rerr, fmt.Errorf("unable to close document: %w", er))
		}
	}()

	toc := e.GetToc()
	if toc == nil {
		log.Info("Document has no outline", zap.String("file", src))
		return nil
	}
	if cmd.Bool("checked-only") {
		toc = document.CloneTocTree(toc, true)
		document.SetTocTreeParents(toc.RootItem())
	}

	consistent := true
	document.VisitTocTree(toc.RootItem(), func(ti *document.TocItem) bool {
		if !ti.PageNumbersMatch(log) {
			consistent = false
		}
		return true
	})

	fmt.Fprint(os.Stdout, toc.DumpString())

	if !consistent {
		return errors.New("outline page numbers do not match destinations")
	}
	return nil
}

// Info prints document facts and the reading history entry. With --page the
// visit is recorded.
func Info(ctx context.Context, cmd *cli.Command) (rerr error) {
	env := state.EnvFromContext(ctx)
	log := env.Log

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input file specified")
	}

	e, err := openEngine(ctx, src, cmd)
	if err != nil {
		return err
	}
	defer func() {
		if er := e.Close(); er != nil {
			rerr = multierr.Append(rerr, fmt.Errorf("unable to close document: %w", er))
		}
	}()

	lastPage, haveLast := 0, false
	if env.History != nil {
		if lastPage, haveLast, err = env.History.LastPage(src); err != nil {
			return err
		}
	}

	out, err := infoString(e, lastPage, haveLast)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, out)

	if page := int(cmd.Int("page")); page > 0 && env.History != nil {
		if page > e.PageCount() {
			return fmt.Errorf("page %d out of range, document has %d pages", page, e.PageCount())
		}
		if err := env.History.Record(src, page); err != nil {
			return err
		}
		log.Info("Recorded reading position", zap.String("file", src), zap.Int("page", page))
	}
	return nil
}

// infoString renders the document facts dump.
func infoString(e engine.Engine, lastPage int, haveLast bool) (string, error) {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Document")
	tw.TextBlock(1, "file", e.FileName())
	tw.Line(1, "pages: %d", e.PageCount())

	if n := e.PageCount(); n > 0 {
		span, err := strfmt.Format("{0} .. {1}",
			strfmt.Str(e.GetPageLabel(1)), strfmt.Str(e.GetPageLabel(n)))
		if err != nil {
			return "", err
		}
		tw.TextBlock(1, "labels", span)
	}

	tw.Line(1, "capabilities")
	tw.Line(2, "image collection: %t", e.IsImageCollection())
	tw.Line(2, "printing: %t", e.AllowsPrinting())
	tw.Line(2, "copying text: %t", e.AllowsCopyingText())
	tw.Line(2, "password protected: %t", e.IsPasswordProtected())
	tw.Line(2, "page labels: %t", e.HasPageLabels())

	tw.Line(1, "outline: %t", e.HasToc())
	if toc := e.GetToc(); toc != nil {
		n := 0
		document.VisitTocTree(toc.RootItem(), func(*document.TocItem) bool {
			n++
			return true
		})
		tw.Line(2, "entries: %d", n)
	}

	if haveLast {
		pos, err := strfmt.Format("page %d of %d", strfmt.Int(lastPage), strfmt.Int(e.PageCount()))
		if err != nil {
			return "", err
		}
		tw.TextBlock(1, "last read", pos)
	}
	return tw.String(), nil
}
