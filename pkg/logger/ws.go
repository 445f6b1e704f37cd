package logger

import (
	"os"
	"sync/atomic"
)

// ReopenableWriteSyncer is a zap write syncer whose underlying file can be
// reopened on SIGHUP so logrotate can move the old file away.
type ReopenableWriteSyncer struct {
	path string
	cur  atomic.Value
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) getFile() *os.File {
	return ws.cur.Load().(*os.File)
}

// Reload reopens the log file and closes the previous handle.
func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	old := ws.cur.Swap(file)
	if old != nil {
		return old.(*os.File).Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.getFile().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.getFile().Close()
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (n int, err error) {
	return ws.getFile().Write(p)
}
