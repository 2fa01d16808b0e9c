package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

// 로그 레벨 정의
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 로그 레벨을 문자열로 변환
func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

// 디버그 모드 상태를 저장할 변수와 초기화를 한 번만 수행하기 위한 once
var isDebugMode bool
var debugOnce sync.Once

// 출력 대상 (테스트에서 교체 가능)
var (
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
	writerMu  sync.Mutex
)

// IsDebug는 현재 애플리케이션이 디버그 모드로 실행 중인지 확인합니다
func IsDebug() bool {
	debugOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		isDebugMode = env == "dev" || env == "local"
	})
	return isDebugMode
}

// SetLogOutput은 일반 로그와 에러 로그의 출력 대상을 교체합니다
func SetLogOutput(out, errOut io.Writer) {
	writerMu.Lock()
	defer writerMu.Unlock()
	outWriter = out
	errWriter = errOut
}

// LogMessage는 지정된 레벨에 해당하는 로그 메시지를 출력합니다
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	logMessage(2, level, service, format, args...)
}

func logMessage(skip int, level LogLevel, service string, format string, args ...interface{}) {
	// 디버그 모드가 아닐 때 DEBUG 로그는 출력하지 않음
	if level == DEBUG && !IsDebug() {
		return
	}

	// 호출 위치 정보 가져오기
	_, file, line, _ := runtime.Caller(skip)
	// 전체 경로에서 파일명만 추출
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			file = file[i+1:]
			break
		}
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")

	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("[%s] %s [%s] %s:%d - %s",
		timestamp, level.String(), service, file, line, message)

	writerMu.Lock()
	defer writerMu.Unlock()

	// 에러 레벨 이상은 표준 에러로 출력하고 메트릭에 기록
	if level >= ERROR {
		fmt.Fprintln(errWriter, logLine)
		RecordError(service, level.String())
	} else {
		fmt.Fprintln(outWriter, logLine)
	}
}

// 편의성 함수들
func Debug(service, format string, args ...interface{}) {
	logMessage(2, DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	logMessage(2, INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	logMessage(2, WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	logMessage(2, ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	logMessage(2, FATAL, service, format, args...)
	os.Exit(1)
}
