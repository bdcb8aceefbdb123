package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/gobrowse/html"
	"github.com/heathj/gobrowse/html/attr"
)

type pageConfig struct {
	title     string
	selfClose bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	cfg := pageConfig{}
	cmd := &cobra.Command{
		Use:   "gobrowse",
		Short: "Render a sample HTML page built from tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return writePage(cmd.OutOrStdout(), cfg)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&cfg.title, "title", "Hello & welcome", "page title, escaped on output")
	cmd.Flags().BoolVar(&cfg.selfClose, "self-close", false, "render void elements as <tag />")
	cmd.Flags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

// page assembles a small document. Whitespace between tags is emitted as
// Text so it goes through escaping like any other character data.
func page(cfg pageConfig) html.Tokens {
	void := func(t html.Token) html.Token {
		if cfg.selfClose {
			return t.Closed()
		}
		return t
	}

	htmlAttrs := attr.Empty()
	htmlAttrs.Set("lang", "en")

	return html.Tokens{
		html.Doctype(),
		html.Text("\n"),
		html.StartTag("html", htmlAttrs),
		html.StartTag("head", attr.Empty()),
		void(html.StartTag("meta", attr.Of(attr.New("charset", "utf-8")))),
		html.StartTag("title", attr.Empty()),
		html.Text(cfg.title),
		html.EndTag("title"),
		html.StartTag("style", attr.Empty()),
		html.RawText("body > p { margin: 0 }"),
		html.EndTag("style"),
		html.EndTag("head"),
		html.Text("\n"),
		html.StartTag("body", attr.Empty()),
		html.Comment(" generated "),
		html.StartTag("p", attr.Of(attr.New("class", "lead"))),
		html.Text(cfg.title),
		html.EndTag("p"),
		void(html.StartTag("br", attr.Empty())),
		html.EndTag("body"),
		html.EndTag("html"),
		html.Text("\n"),
	}
}

func writePage(w io.Writer, cfg pageConfig) error {
	doc := page(cfg)
	out := doc.String()
	logrus.WithFields(logrus.Fields{
		"tokens": len(doc),
		"bytes":  len(out),
	}).Debug("rendered page")

	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "writing page")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("gobrowse failed")
		os.Exit(1)
	}
}
