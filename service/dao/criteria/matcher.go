package criteria

import (
	"github.com/viant/xdisplay/model/screen"
	"github.com/viant/xdisplay/service/dao"
)

// Named is the list parameter selecting screens with (true) or without (false)
// their own display name.
const Named = "Named"

// MatchScreen reports whether aScreen satisfies all parameters. Unknown
// parameters are ignored.
func MatchScreen(aScreen *screen.Screen, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil {
			continue
		}
		switch parameter.Name {
		case Named:
			expect, ok := parameter.Value.(bool)
			if ok && aScreen.HasName() != expect {
				return false
			}
		}
	}
	return true
}
