package ddk

import "bytes"

// CString returns the NUL-terminated prefix of buf, as written by LoadFile
// and SaveFile.
func CString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
