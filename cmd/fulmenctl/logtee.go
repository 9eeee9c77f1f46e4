package main

import (
	"os"

	cclog "github.com/fulmenhq/crucible-go/log"
)

// logTee drains a [cclog.Publisher] subscription into a file, letting
// --log-tee add a file destination alongside stderr without the handler
// itself knowing about the file.
type logTee struct {
	file *os.File
	pub  *cclog.Publisher
	done chan struct{}
}

func newLogTee(path string) (*logTee, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	pub := cclog.NewPublisher()
	sub := pub.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for entry := range sub.C() {
			f.Write(entry)
		}
	}()

	return &logTee{file: f, pub: pub, done: done}, nil
}

// Write implements [io.Writer], forwarding to the underlying publisher.
func (t *logTee) Write(b []byte) (int, error) {
	return t.pub.Write(b)
}

// Close stops accepting writes, waits for the drain goroutine to finish,
// and closes the backing file.
func (t *logTee) Close() error {
	if err := t.pub.Close(); err != nil {
		return err
	}
	<-t.done
	return t.file.Close()
}
