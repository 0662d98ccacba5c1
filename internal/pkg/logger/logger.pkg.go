package logger

import (
	"log"
	"os"
)

var (
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
	HTTP    *log.Logger
)

// Setup initializes the leveled loggers. Must be called before any other
// package logs.
func Setup() {
	flags := log.Ldate | log.Ltime | log.Lshortfile

	Info = log.New(os.Stdout, "[INFO] ", flags)
	Warning = log.New(os.Stdout, "[WARN] ", flags)
	Error = log.New(os.Stderr, "[ERROR] ", flags)
	HTTP = log.New(os.Stdout, "[HTTP] ", log.Ldate|log.Ltime)
}

func init() {
	Setup()
}
