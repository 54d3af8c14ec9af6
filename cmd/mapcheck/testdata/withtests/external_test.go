package withtests_test

import "mapcheck/cmd/mapcheck/testdata/withtests"

//mapcheck:complete
func fillB(dst *withtests.Target) *withtests.Target {
	dst.B = 1
	return dst
}
