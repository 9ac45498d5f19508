//go:build unix

// Package pipe receives clipboard payloads from a Wayland compositor. The
// write end is handed to the offer's source client; Drain reads our end
// until the writer closes it or goes quiet.
package pipe

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

var ErrFailedCreate = errors.New("pipe: failed to create pipe")

type Pipe struct {
	rfd *os.File
	wfd *os.File
}

func New() (*Pipe, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, errors.Join(ErrFailedCreate, err)
	}
	return &Pipe{rfd: r, wfd: w}, nil
}

// Fd returns the write end; ownership transfers to the Wayland request it
// is passed to, and the caller closes the local copy right after.
func (p *Pipe) Fd() *os.File { return p.wfd }

func (p *Pipe) ReadFd() *os.File { return p.rfd }

// Close closes only the read end. The write end is managed by the
// compositor once transferred.
func (p *Pipe) Close() error { return p.rfd.Close() }

// Drain reads everything the source client writes. Writers that close the
// pipe end the read immediately; misbehaving ones that keep the fd open are
// cut off once no data arrives within readTimeout.
func Drain(fd uintptr) ([]byte, error) {
	const (
		readChunkSize = 64 * 1024
		readTimeout   = 100 * time.Millisecond
		dataDelay     = 10 * time.Millisecond
	)

	var dest bytes.Buffer
	readBuf := make([]byte, readChunkSize)

	lastRead := time.Now()
	hasData := false

	for {
		timeout, err := waitForData(fd, lastRead, hasData, readTimeout, dataDelay)
		if err != nil {
			return nil, err
		}
		if timeout {
			break
		}

		n, err := syscall.Read(int(fd), readBuf)
		if err != nil && !needWait(err) {
			return nil, err
		}
		if n == 0 {
			break
		}
		if n > 0 {
			dest.Write(readBuf[:n])
		}

		lastRead = time.Now()
		hasData = true
	}

	return dest.Bytes(), nil
}

func needWait(err error) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && (errors.Is(errno, syscall.EAGAIN) || errors.Is(errno, syscall.EINTR))
}

func waitForData(fd uintptr, lastRead time.Time, hasData bool, readTimeout, dataDelay time.Duration) (bool, error) {
	if hasData && time.Since(lastRead) >= dataDelay {
		return true, nil
	}

	fds := []unix.PollFd{{
		Fd:     int32(fd),
		Events: unix.POLLIN | unix.POLLERR | unix.POLLHUP | unix.POLLNVAL,
	}}

	timeout := -1
	if hasData {
		timeout = int(readTimeout.Milliseconds())
	}

	for {
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			return false, fmt.Errorf("poll error: %w", err)
		}
		if n == 0 {
			return true, nil
		}

		re := fds[0].Revents
		if re&(unix.POLLERR|unix.POLLNVAL) != 0 {
			return true, fmt.Errorf("poll error revents=%v", re)
		}
		// POLLIN before POLLHUP: a closed writer can leave buffered data.
		if re&unix.POLLIN != 0 {
			return false, nil
		}
		if re&unix.POLLHUP != 0 {
			return true, nil
		}
	}
}
