package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-weather/internal/domain/model"

	"github.com/spf13/afero"
)

// FileSettingsGateway stores the blob in a JSON file. Writes go to a temporary
// file that is renamed over the target, so a reader never sees a partial blob.
type FileSettingsGateway struct {
	fs   afero.Fs
	path string
}

var _ SettingsGateway = (*FileSettingsGateway)(nil)

func NewFileSettingsGateway(fs afero.Fs, path string) *FileSettingsGateway {
	return &FileSettingsGateway{fs: fs, path: filepath.Clean(path)}
}

func (gateway *FileSettingsGateway) Load(context.Context) ([]byte, error) {
	data, err := afero.ReadFile(gateway.fs, gateway.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", gateway.path, err)
	}
	return data, nil
}

func (gateway *FileSettingsGateway) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(gateway.path)
	if err := gateway.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(gateway.fs, dir, filepath.Base(gateway.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = gateway.fs.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = gateway.fs.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := gateway.fs.Rename(tmpName, gateway.path); err != nil {
		_ = gateway.fs.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}

func (gateway *FileSettingsGateway) Health(context.Context) model.ComponentHealthStatus {
	details := map[string]string{"backend": gateway.Name(), "path": gateway.path}

	info, err := gateway.fs.Stat(filepath.Dir(gateway.path))
	if errors.Is(err, os.ErrNotExist) {
		return upStatus(details)
	}
	if err != nil {
		return downStatus(err, details)
	}
	if !info.IsDir() {
		return downStatus(fmt.Errorf("%s is not a directory", filepath.Dir(gateway.path)), details)
	}
	return upStatus(details)
}

func (gateway *FileSettingsGateway) Name() string {
	return "file"
}
