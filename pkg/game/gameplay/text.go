package gameplay

import "strings"

// AsciiHeader is printed at the end of the boot sequence
var AsciiHeader = strings.Join([]string{
	"  _   _  ______ _______ _____  _    _ _   _ _   _ ______ _____  ",
	" | \\ | |/ _____|__   __|  __ \\| |  | | \\ | | \\ | |  ____|  __ \\ ",
	" |  \\| | |        | |  | |__) | |  | |  \\| |  \\| | |__  | |__) |",
	" | . ` | |  ___   | |  |  _  /| |  | | . ` | . ` |  __| |  _  / ",
	" | |\\  | |__|  |  | |  | | \\ \\| |__| | |\\  | |\\  | |____| | \\ \\ ",
	" |_| \\_|\\______|  |_|  |_|  \\_\\____/|_| \\_|_| \\_|______|_|  \\_\\",
	"",
	"      >>> SYSTEM ACCESS TERMINAL v4.0.2 <<<",
}, "\n")

// HelpText is the menu's command reference
const HelpText = `AVAILABLE COMMANDS:
-------------------
help        : Show this message
clear       : Clear terminal output
ls          : List directory contents
cd [dir]    : Change directory
cat [file]  : Read file content
pwd         : Print working directory
start       : Begin breach protocol
exit        : Abort session`

// WinBanner closes a successful breach
const WinBanner = `SYSTEM BREACH COMPLETE
----------------------
YOU ARE NOW ROOT.

THANKS FOR PLAYING.
Type 'reboot' to restart.`
