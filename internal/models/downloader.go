package models

import (
	"archive/tar"
	"compress/bzip2"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// EnsureAsset makes sure one registry asset exists under dir and returns
// its absolute path. Existing files are trusted; downloads go through a
// temp file and a rename so a partial fetch never masquerades as a model.
func EnsureAsset(ctx context.Context, dir string, asset AssetInfo) (string, error) {
	destPath := filepath.Join(dir, asset.FileName)
	if _, err := os.Stat(destPath); err == nil {
		return destPath, nil
	}

	log.Printf("Fetching %s from %s", asset.Name, asset.DownloadURL)
	if err := downloadFile(ctx, asset.DownloadURL, destPath); err != nil {
		return "", fmt.Errorf("fetch %s: %w", asset.ID, err)
	}
	return destPath, nil
}

// KokoroPaths locates the pieces of the Kokoro TTS package on disk.
type KokoroPaths struct {
	Model   string
	Voices  string
	Tokens  string
	DataDir string
}

const kokoroDirName = "kokoro-multi-lang-v1_0"

// EnsureKokoro fetches and unpacks the Kokoro package into dir on first
// use. An already-unpacked package is reused; the archive is removed once
// extraction succeeds.
func EnsureKokoro(ctx context.Context, dir string) (KokoroPaths, error) {
	root := filepath.Join(dir, kokoroDirName)
	paths := KokoroPaths{
		Model:   filepath.Join(root, "model.onnx"),
		Voices:  filepath.Join(root, "voices.bin"),
		Tokens:  filepath.Join(root, "tokens.txt"),
		DataDir: filepath.Join(root, "espeak-ng-data"),
	}
	if kokoroComplete(paths) {
		return paths, nil
	}

	asset, ok := Lookup("kokoro")
	if !ok {
		return KokoroPaths{}, fmt.Errorf("asset kokoro missing from registry")
	}
	archivePath, err := EnsureAsset(ctx, dir, asset)
	if err != nil {
		return KokoroPaths{}, err
	}

	if err := extractTarBz2(archivePath, dir); err != nil {
		os.Remove(archivePath)
		return KokoroPaths{}, fmt.Errorf("unpack %s: %w", asset.FileName, err)
	}
	os.Remove(archivePath)

	if !kokoroComplete(paths) {
		return KokoroPaths{}, fmt.Errorf("kokoro package incomplete after unpack: %s", root)
	}
	return paths, nil
}

func kokoroComplete(paths KokoroPaths) bool {
	for _, p := range []string{paths.Model, paths.Voices, paths.Tokens, paths.DataDir} {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}

func extractTarBz2(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()
	return extractTar(tar.NewReader(bzip2.NewReader(f)), destDir)
}

func extractTar(tr *tar.Reader, destDir string) error {
	cleanDest := filepath.Clean(destDir)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target := filepath.Join(cleanDest, filepath.Clean(hdr.Name))
		if !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry escapes destination: %s", hdr.Name)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			out, err := os.Create(target)
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		}
	}
}

func downloadFile(ctx context.Context, url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpPath := destPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to create request: %w", err)
	}

	// No client timeout: model files run into the hundreds of megabytes.
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		os.Remove(tmpPath)
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	out.Close()

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
