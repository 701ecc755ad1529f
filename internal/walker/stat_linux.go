//go:build linux

package walker

import "syscall"

func statTimes(st *syscall.Stat_t) (atime, mtime, ctime int64) {
	return st.Atim.Sec, st.Mtim.Sec, st.Ctim.Sec
}
