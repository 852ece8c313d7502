package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppDirName names the per-user config folder.
const AppDirName = "phraseserve"

// PathResolver finds config and corpus files relative to the user, the working dir and the binary
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     configDirFor(runtime.GOOS, homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// configDirFor returns the appropriate config directory for the platform
func configDirFor(goos, homeDir string) string {
	switch goos {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, ".config", AppDirName)
	}
}

// GetConfigPath returns the full path for a config file in the first writable location
func (pr *PathResolver) GetConfigPath(filename string) string {
	candidates := []string{
		pr.configDir,
		filepath.Join(os.TempDir(), AppDirName),
		pr.executableDir,
	}
	for i, dir := range candidates {
		if result := CheckDirStatus(dir); result.Writable {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}

// ResolveCorpus finds the corpus file. Relative paths are tried against the
// working dir, the executable dir and the config dir, in that order.
// When nothing exists the working-dir candidate is returned so the caller reports it.
func (pr *PathResolver) ResolveCorpus(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, path),
	)

	for _, candidate := range candidates {
		if FileExists(candidate) {
			log.Debugf("Found corpus: %s", candidate)
			return candidate
		}
		log.Debugf("Corpus candidate not found: %s", candidate)
	}
	return candidates[0]
}
