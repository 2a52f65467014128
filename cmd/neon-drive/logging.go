package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "neon-drive.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/neon-drive.log when debug is set
// and discards it otherwise; the terminal UI owns stdout and stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if err := rotateLog(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation: %v\n", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("neon-drive logging started (pid %d)", os.Getpid())
	return f
}

// rotateLog moves an oversized log aside as neon-drive-<timestamp>.log
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
