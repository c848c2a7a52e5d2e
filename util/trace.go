package util

import "github.com/apex/log"

// Trace 记录一段操作的耗时，用法: defer util.Trace("gen xxx")()
func Trace(msg string) func() {
	entry := log.Trace(msg)
	return func() {
		entry.Stop(nil)
	}
}
