package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StatePathKey      = "state.path"
	ledgerFileMode    = 0o600
	ledgerDirMode     = 0o700
	ledgerConfigDir   = ".tamago"
	ledgerConfigFile  = "ledger.toml"
	tempFilePattern   = ".ledger-*.toml.tmp"
	defaultPathSuffix = ledgerConfigDir + string(filepath.Separator) + ledgerConfigFile
)

// Repository keeps every ledger in one TOML file. Each typed view
// (Assets, Pets, ...) reads and rewrites the whole file under a lock
// shared by all repositories pointing at the same path.
type Repository struct {
	ledgerPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	ledgerPath := cfg.GetString(StatePathKey)
	if ledgerPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		ledgerPath = filepath.Join(homeDir, defaultPathSuffix)
	}

	ledgerPath, err := normalizeLedgerPath(ledgerPath)
	if err != nil {
		return nil, err
	}

	return &Repository{ledgerPath: ledgerPath, mu: lockForPath(ledgerPath)}, nil
}

func (r *Repository) Path() string {
	return r.ledgerPath
}

func (r *Repository) view(ctx context.Context, fn func(fileSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	return fn(file)
}

// update writes the file only when fn succeeds.
func (r *Repository) update(ctx context.Context, fn func(*fileSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	if err := fn(&file); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.ledgerPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read ledger file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode ledger file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeLedgerPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve ledger path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.Version = currentSchemaVersion

	if err := os.MkdirAll(filepath.Dir(r.ledgerPath), ledgerDirMode); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode ledger file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.ledgerPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp ledger file: %w", err)
	}

	if err := tempFile.Chmod(ledgerFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp ledger file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp ledger file: %w", err)
	}

	if err := os.Rename(tempName, r.ledgerPath); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.ledgerPath, ledgerFileMode); err != nil {
		return fmt.Errorf("chmod ledger file: %w", err)
	}

	return nil
}
