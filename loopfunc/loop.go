/*
Package loopfunc ： 用于控制需要持续运行的循环方法，当方法崩溃时会自动重启
*/
package loopfunc

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/xyzj/geodatum/json"
)

// LoopFunc 执行循环工作，并提供panic恢复
//
// f: 要执行的循环方法，正常返回时结束
//
// name：这个方法的名称，用于错误标识
//
// logWriter：方法崩溃时的日志记录器，默认os.stdout
func LoopFunc(f func(params ...any), name string, logWriter io.Writer, params ...any) {
	LoopWithRetry(f, name, logWriter, time.Second*20, 0, params...)
}

// LoopWithRetry 执行循环工作，并在指定的等待时间后提供panic恢复
//
// retry：panic最大次数，0表示不限制
func LoopWithRetry(f func(params ...any), name string, logWriter io.Writer, timewait time.Duration, retry int, params ...any) {
	if logWriter == nil {
		logWriter = os.Stdout
	}
	errCount := 0
	for {
		err := runSafe(f, params...)
		if err == nil {
			return
		}
		logWriter.Write(json.Bytes(fmt.Sprintf("%s [LOOP] crash: %+v\n", name, err)))
		errCount++
		if retry > 0 && errCount >= retry {
			logWriter.Write(json.Bytes(name + " [LOOP] the maximum number of retries has been reached, the end.\n"))
			return
		}
		time.Sleep(timewait)
	}
}

// GoFunc 执行安全的子线程工作，包含panic捕获
func GoFunc(f func(params ...any), name string, logWriter io.Writer, params ...any) {
	if logWriter == nil {
		logWriter = os.Stdout
	}
	go func() {
		if err := runSafe(f, params...); err != nil {
			logWriter.Write(json.Bytes(fmt.Sprintf("%s [LOOP] crash: %+v\n", name, err)))
		}
	}()
}

// runSafe 执行f，panic转为带堆栈的error
func runSafe(f func(params ...any), params ...any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.WithStack(e)
			} else {
				err = errors.Errorf("%v", r)
			}
		}
	}()
	f(params...)
	return nil
}
