// Package export renders the portfolio to plain files for static hosting.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/Drogon4231/portfolio/internal/config"
	"github.com/Drogon4231/portfolio/internal/portfolio"
	"github.com/Drogon4231/portfolio/internal/web"
)

type Exporter struct {
	site    config.SiteConfig
	content portfolio.Content
	tmpl    *template.Template
	logger  *zap.Logger
}

func New(site config.SiteConfig, content portfolio.Content, logger *zap.Logger) (*Exporter, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Exporter{site: site, content: content, tmpl: tmpl, logger: logger}, nil
}

// Export writes the site into dir and returns the relative paths written.
//
// Layout: index.html for the default track, <track>/index.html for every
// track (all/ included), static/*, projects.json, content.json, and any
// resume files found in the public directory.
func (e *Exporter) Export(ctx context.Context, dir string) ([]string, error) {
	var written []string
	write := func(rel string, data []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
		}
		if err := atomic.WriteFile(dst, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		written = append(written, rel)
		return nil
	}

	index, err := e.render(e.site.DefaultTrack)
	if err != nil {
		return nil, err
	}
	if err := write("index.html", index); err != nil {
		return nil, err
	}

	for _, track := range portfolio.Tracks(e.content.Projects) {
		page, err := e.render(track)
		if err != nil {
			return nil, err
		}
		if err := write(track.Slug()+"/index.html", page); err != nil {
			return nil, err
		}
	}

	err = fs.WalkDir(web.StaticFS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(web.StaticFS(), p)
		if err != nil {
			return err
		}
		return write("static/"+p, data)
	})
	if err != nil {
		return nil, fmt.Errorf("copy static assets: %w", err)
	}

	for _, f := range e.site.ResumeFiles {
		data, err := os.ReadFile(filepath.Join(e.site.PublicDir, f))
		if errors.Is(err, fs.ErrNotExist) {
			e.logger.Warn("resume file missing, link will be broken", zap.String("file", f))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read resume %s: %w", f, err)
		}
		if err := write(f, data); err != nil {
			return nil, err
		}
	}

	projects, err := json.MarshalIndent(e.content.Projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode projects: %w", err)
	}
	if err := write("projects.json", projects); err != nil {
		return nil, err
	}

	content, err := json.MarshalIndent(e.content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	if err := write("content.json", content); err != nil {
		return nil, err
	}

	e.logger.Info("site exported", zap.String("dir", dir), zap.Int("files", len(written)))
	return written, nil
}

func (e *Exporter) render(track portfolio.Track) ([]byte, error) {
	var buf bytes.Buffer
	page := web.NewPage(e.content, e.site, track, true, true)
	if err := e.tmpl.ExecuteTemplate(&buf, "index.html", page); err != nil {
		return nil, fmt.Errorf("render %s: %w", track, err)
	}
	return buf.Bytes(), nil
}
