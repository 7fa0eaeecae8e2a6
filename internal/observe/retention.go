package observe

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/aadk-dev/aadk/internal/config"
)

// sweepSchedule re-runs retention even when no export triggers it, so
// old archives age out of an idle daemon too.
const sweepSchedule = "@every 1h"

// Sweeper enforces the bundle retention policy: an age bound and a
// count cap on exported archives, plus cleanup of stale staging
// directories. Every deletion is best-effort.
type Sweeper struct {
	cfg *config.Config

	mu   sync.Mutex
	cron *cron.Cron
}

// NewSweeper creates a sweeper over the configured bundle directory.
func NewSweeper(cfg *config.Config) *Sweeper {
	return &Sweeper{cfg: cfg, cron: cron.New()}
}

// Start schedules the periodic sweep. Safe to skip in tests; Sweep can
// always be called directly.
func (s *Sweeper) Start() {
	if _, err := s.cron.AddFunc(sweepSchedule, s.Sweep); err != nil {
		logrus.Warnf("Failed to schedule bundle retention: %v", err)
		return
	}
	s.cron.Start()
}

// Stop halts the periodic sweep.
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Sweep applies the retention policy once. Runs serially; overlapping
// callers queue behind the mutex.
func (s *Sweeper) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneOldBundles()
	s.capBundleCount()
	s.pruneStaleTmp()
}

type bundleFile struct {
	path    string
	modTime time.Time
}

func (s *Sweeper) listBundles() []bundleFile {
	entries, err := os.ReadDir(s.cfg.BundlesDir())
	if err != nil {
		return nil
	}

	files := make([]bundleFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, bundleFile{
			path:    filepath.Join(s.cfg.BundlesDir(), entry.Name()),
			modTime: info.ModTime(),
		})
	}
	return files
}

func (s *Sweeper) pruneOldBundles() {
	if s.cfg.BundleRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().Add(-time.Duration(s.cfg.BundleRetentionDays) * 24 * time.Hour)

	for _, file := range s.listBundles() {
		if file.modTime.Before(cutoff) {
			if err := os.Remove(file.path); err != nil {
				logrus.Debugf("Failed to remove expired bundle %s: %v", file.path, err)
			}
		}
	}
}

func (s *Sweeper) capBundleCount() {
	if s.cfg.BundleMax <= 0 {
		return
	}

	files := s.listBundles()
	if len(files) <= s.cfg.BundleMax {
		return
	}

	// Oldest first; everything past the cap goes.
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})
	for _, file := range files[:len(files)-s.cfg.BundleMax] {
		if err := os.Remove(file.path); err != nil {
			logrus.Debugf("Failed to remove surplus bundle %s: %v", file.path, err)
		}
	}
}

func (s *Sweeper) pruneStaleTmp() {
	if s.cfg.TmpRetentionHours <= 0 {
		return
	}
	cutoff := time.Now().Add(-time.Duration(s.cfg.TmpRetentionHours) * time.Hour)

	entries, err := os.ReadDir(s.cfg.TmpDir())
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(s.cfg.TmpDir(), entry.Name())
		if err := os.RemoveAll(path); err != nil {
			logrus.Debugf("Failed to remove stale tmp dir %s: %v", path, err)
		}
	}
}
