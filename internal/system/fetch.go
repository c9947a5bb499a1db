package system

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-retryablehttp"
)

// newFetchClient builds the HTTP client for release downloads. RetryMax is
// zero: a failed download aborts the run rather than retrying against a
// half-provisioned device.
func newFetchClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil
	return client
}

// FetchTarMember downloads a gzip-compressed tarball from url and extracts
// the single named member into destDir, with leading path components
// stripped. Archive ownership metadata is discarded; the file lands owned by
// the current user with the archived mode bits.
func FetchTarMember(url, member, destDir string) error {
	client := newFetchClient()

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("failed to download %s: unexpected status %s", url, resp.Status)
	}

	if err := ExtractTarMember(resp.Body, member, destDir); err != nil {
		return fmt.Errorf("failed to extract %s from %s: %w", member, url, err)
	}
	return nil
}

// ExtractTarMember reads a gzip-compressed tar stream and writes the single
// member named by its full archive path into destDir under its base name.
func ExtractTarMember(r io.Reader, member, destDir string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("not a gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return fmt.Errorf("member %s not found in archive", member)
		}
		if err != nil {
			return fmt.Errorf("tar read failed: %w", err)
		}

		if hdr.Name != member || hdr.Typeflag != tar.TypeReg {
			continue
		}

		destPath := filepath.Join(destDir, filepath.Base(member))
		out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, hdr.FileInfo().Mode().Perm())
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", destPath, err)
		}

		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return fmt.Errorf("failed to write %s: %w", destPath, err)
		}
		return out.Close()
	}
}
