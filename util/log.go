package util

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

/*
 * a custom file logger. Writes either plain appended lines or, when
 * IsCompressed is set, a single zstd frame rewritten on every message.
 */
const (
	Error   = 1
	Warning = 2
	Info    = 4

	RedColor    = "\033[31m"
	YellowColor = "\033[33m"
	CyanColor   = "\033[36m"
	ResetColor  = "\033[0m"
)

type LoggerInfo struct {
	Filename     string `yaml:"filename"`
	IsCompressed bool   `yaml:"is_compressed"`
	IsColored    bool   `yaml:"is_colored"`
	SaveTime     bool   `yaml:"save_time"`
	Mode         uint8  `yaml:"mode"`
}

type Logger struct {
	li  *LoggerInfo
	mtx sync.Mutex
}

func NewLogger(li *LoggerInfo) *Logger {
	return &Logger{
		li,
		sync.Mutex{},
	}
}

func (l *Logger) colorize(line string, color string) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func (l *Logger) prepareString(str string, clr string) string {
	toWrite := l.colorize(str, clr) + " "
	if l.li.SaveTime {
		toWrite += time.Now().String() + " "
	}
	return toWrite
}

func (l *Logger) LogString(s string) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.li.Filename == "" {
		return
	}
	if l.li.IsCompressed == false {
		// just append line
		f, err := os.OpenFile(l.li.Filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err == nil {
			defer f.Close()
			f.WriteString(s + "\n")
		}
		return
	}
	// decompress the current log, append the line, compress it back.
	// todo: switch to appending independent zstd frames for large logs.
	currentLog := []byte{}
	if data, err := os.ReadFile(l.li.Filename); err == nil {
		dec, err := zstd.NewReader(bytes.NewReader(data))
		if err == nil {
			currentLog, _ = io.ReadAll(dec)
			dec.Close()
		}
	}
	currentLog = append(currentLog, []byte(s+"\n")...)
	buf := new(bytes.Buffer)
	enc, err := zstd.NewWriter(buf)
	if err == nil {
		enc.Write(currentLog)
		if err = enc.Close(); err == nil {
			os.WriteFile(l.li.Filename, buf.Bytes(), 0600)
		}
	}
}

func (l *Logger) LogError(err error) {
	if l.li.Mode&Error == Error {
		toWrite := l.prepareString("[ERROR]", RedColor) + err.Error()
		l.LogString(toWrite)
	}
}

func (l *Logger) LogWarning(warning string) {
	if l.li.Mode&Warning == Warning {
		toWrite := l.prepareString("[WARNING]", YellowColor) + warning
		l.LogString(toWrite)
	}
}

func (l *Logger) LogInfo(info string) {
	if l.li.Mode&Info == Info {
		toWrite := l.prepareString("[INFO]", CyanColor) + info
		l.LogString(toWrite)
	}
}
