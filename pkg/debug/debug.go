package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

const logName = "fancontroller.log"

var initOnce sync.Once
var fh *os.File

func start() {
	var err error
	fh, err = os.OpenFile(logName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("error opening file: %v", err)
	}
}

func Log(msg string) {
	initOnce.Do(start)

	timeStr := time.Now().Format("2006-01-02 15:04:05.000")
	_, fullPath, line, ok := runtime.Caller(1)
	if ok {
		LogRaw(fmt.Sprintf("%s %s:%d %s", timeStr, filepath.Base(fullPath), line, msg))
	} else {
		LogRaw(timeStr + " " + msg)
	}
}

func LogRaw(msg string) {
	if fh == nil {
		return
	}
	fh.WriteString(msg + "\n")
}

func Close() {
	if fh == nil {
		return
	}
	fh.Sync()
	fh.Close()
}
