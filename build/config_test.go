package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.Mkdir(filepath.Join(dir, "static"), 0755))
	path := writeFile(t, dir, configFile, `title = "My LinkedIn"
link = "https://example.com/archive/"
author = "Jo Doe"
description = "Posts and comments, by month."
static_dir = "static"
markdown = true
atom = true
`)

	cfg, err := loadConfig(path)
	req.NoError(err)
	req.Equal("My LinkedIn", cfg.Title)
	req.Equal("https://example.com/archive/", cfg.Link)
	req.Equal("Jo Doe", cfg.author())
	req.Equal("Posts and comments, by month.", cfg.Description)
	req.Equal(filepath.Join(dir, "static"), cfg.StaticDir)
	req.True(cfg.Markdown)
	req.True(cfg.Atom)
}

func TestLoadConfig_Minimal(t *testing.T) {
	req := require.New(t)
	path := writeFile(t, t.TempDir(), configFile, `title = "Archive"`)

	cfg, err := loadConfig(path)
	req.NoError(err)
	req.Equal("Archive", cfg.Title)
	req.Empty(cfg.Link)
	req.Equal("Archive", cfg.author())
	req.False(cfg.Markdown)
	req.False(cfg.Atom)
}

func TestLoadConfig_MissingTitle(t *testing.T) {
	path := writeFile(t, t.TempDir(), configFile, `link = "https://example.com"`)

	_, err := loadConfig(path)
	require.ErrorContains(t, err, "Title")
}

func TestLoadConfig_MissingStaticDir(t *testing.T) {
	path := writeFile(t, t.TempDir(), configFile, "title = \"Archive\"\nstatic_dir = \"nope\"\n")

	_, err := loadConfig(path)
	require.ErrorContains(t, err, "StaticDir")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), configFile))
	require.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), configFile, "title = \n")

	_, err := loadConfig(path)
	require.Error(t, err)
}
