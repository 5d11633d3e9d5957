package acquire

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/madellimac/hulotte/internal/branding"
	"github.com/madellimac/hulotte/internal/platform"
)

// SurferBinary is the name of the extracted waveform viewer.
const SurferBinary = "surfer"

// SurferDir is where the installer puts the viewer under a tool root.
func SurferDir(toolRoot string) string {
	return filepath.Join(toolRoot, "tools", "surfer")
}

// Surfer downloads the Surfer waveform viewer release archive.
type Surfer struct {
	URL    string
	Client *http.Client
}

// NewSurfer returns a downloader for the release pinned in branding.
func NewSurfer() *Surfer {
	return &Surfer{URL: branding.SurferURL(), Client: http.DefaultClient}
}

// Install downloads the archive into dir and extracts the viewer binary to
// dir/surfer. It returns the binary path.
func (s *Surfer) Install(ctx context.Context, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	archive := filepath.Join(dir, "surfer.zip")
	if err := s.download(ctx, archive); err != nil {
		return "", err
	}
	defer os.Remove(archive)

	return extractSurfer(archive, dir)
}

func (s *Surfer) download(ctx context.Context, dest string) error {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", branding.CLIName()+"-installer")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating download file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("writing download: %w", err)
	}
	return nil
}

// extractSurfer writes the first regular file whose name mentions surfer
// to dir/surfer and makes it executable.
func extractSurfer(archive, dir string) (string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return "", fmt.Errorf("opening zip archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !strings.Contains(filepath.Base(f.Name), SurferBinary) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening zip entry: %w", err)
		}
		defer rc.Close()

		dest := filepath.Join(dir, SurferBinary)
		out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755)
		if err != nil {
			return "", fmt.Errorf("creating binary file: %w", err)
		}
		if _, err := io.Copy(out, rc); err != nil {
			out.Close()
			return "", fmt.Errorf("extracting binary: %w", err)
		}
		if err := out.Close(); err != nil {
			return "", fmt.Errorf("extracting binary: %w", err)
		}
		if err := platform.Chmod(dest, 0755); err != nil {
			return "", err
		}
		return dest, nil
	}

	return "", fmt.Errorf("surfer binary not found in zip archive")
}
