package in

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"studya/internal/modules/timer/dto"
	timerin "studya/internal/modules/timer/port/in"
	"studya/internal/platform/markdown"
)

// VaultObserver turns file events reported against the vault into activity
// feed calls on the timer engine. For modifications it reads the file and
// computes the current word and wikilink counts so the engine can derive
// deltas.
type VaultObserver struct {
	vaultPath string
	usecase   timerin.Usecase
}

func NewVaultObserver(vaultPath string, usecase timerin.Usecase) VaultObserver {
	return VaultObserver{vaultPath: vaultPath, usecase: usecase}
}

func (o VaultObserver) Modified(ctx context.Context, relPath string) error {
	raw, err := os.ReadFile(filepath.Join(o.vaultPath, relPath))
	if err != nil {
		return fmt.Errorf("read observed file: %w", err)
	}
	content := string(raw)
	return o.usecase.FileModified(ctx, dto.FileEventInput{
		Path:      relPath,
		WordCount: markdown.CountWords(content),
		LinkCount: markdown.CountWikilinks(content),
	})
}

func (o VaultObserver) Opened(ctx context.Context, relPath string) error {
	return o.usecase.FileOpened(ctx, relPath)
}

func (o VaultObserver) Created(ctx context.Context, relPath string) error {
	if err := o.usecase.FileCreated(ctx, relPath); err != nil {
		return err
	}
	// A freshly created file counts as a modification too so its initial
	// content is baselined.
	return o.Modified(ctx, relPath)
}
