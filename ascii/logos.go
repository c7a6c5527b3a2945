// Package ascii provides the built-in text art logos.
//
// Logos are plain text without any escape sequences; color is applied by the
// display layer when the logo is composed next to the info block.
package ascii

import "strings"

// Art identifies one entry of the built-in logo table. The set is closed:
// every value is declared below and Default is always part of it.
type Art int

const (
	Default Art = iota
	MacOS
	Linux
	Ubuntu
	Arch
	Debian
	Fedora
)

var artNames = [...]string{
	Default: "default",
	MacOS:   "macos",
	Linux:   "linux",
	Ubuntu:  "ubuntu",
	Arch:    "arch",
	Debian:  "debian",
	Fedora:  "fedora",
}

// String returns the configuration name of the art ("arch", "macos", ...).
func (a Art) String() string {
	if a < 0 || int(a) >= len(artNames) {
		return "unknown"
	}
	return artNames[a]
}

// All returns every built-in art in declaration order.
func All() []Art {
	all := make([]Art, len(artNames))
	for i := range artNames {
		all[i] = Art(i)
	}
	return all
}

// Lookup maps a configuration name to its Art. Matching ignores case and
// surrounding whitespace.
//
// Returns:
//   - the matching Art and true
//   - Default and false when the name is not part of the built-in set
func Lookup(name string) (Art, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range artNames {
		if n == name {
			return Art(i), true
		}
	}
	return Default, false
}

// Table maps each Art to its lines of text.
type Table map[Art][]string

// Builtin returns the compiled-in logo table. Each call builds a fresh map so
// a caller modifying its copy never affects another render.
func Builtin() Table {
	return Table{
		Default: clone(defaultLogo),
		MacOS:   clone(macosLogo),
		Linux:   clone(linuxLogo),
		Ubuntu:  clone(ubuntuLogo),
		Arch:    clone(archLogo),
		Debian:  clone(debianLogo),
		Fedora:  clone(fedoraLogo),
	}
}

func clone(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// defaultLogo is a bowl of rice, used whenever no better match exists.
var defaultLogo = []string{
	"         .  '  .  '",
	"      '  .  '  .  '  .",
	"    .-'''''''''''''''''-.",
	"   (  o  o  o  o  o  o  )",
	"   |'-._____________.-'|",
	"   \\                   /",
	"    \\                 /",
	"     '-._________.-'",
	"        |_________|",
}

var macosLogo = []string{
	"                    'c.",
	"                 ,xNMM.",
	"               .OMMMMo",
	"               OMMM0,",
	"     .;loddo:' loolloddol;.",
	"   cKMMMMMMMMMMNWMMMMMMMMMM0:",
	" .KMMMMMMMMMMMMMMMMMMMMMMMWd.",
	" XMMMMMMMMMMMMMMMMMMMMMMMX.",
	";MMMMMMMMMMMMMMMMMMMMMMMM:",
	":MMMMMMMMMMMMMMMMMMMMMMMM:",
	".MMMMMMMMMMMMMMMMMMMMMMMMX.",
	" kMMMMMMMMMMMMMMMMMMMMMMMMWd.",
	" .XMMMMMMMMMMMMMMMMMMMMMMMMMMk",
	"  .XMMMMMMMMMMMMMMMMMMMMMMMMK.",
	"    kMMMMMMMMMMMMMMMMMMMMMMd",
	"     ;KMMMMMMMWXXWMMMMMMMk.",
	"       .cooc,.    .,coo:.",
}

var linuxLogo = []string{
	"        #####",
	"       #######",
	"       ##O#O##",
	"       #VVVVV#",
	"     ##  VVV  ##",
	"    #          ##",
	"   #            ##",
	"   #            ###",
	"  QQ#           ##Q",
	"QQQQQQ#       #QQQQQQ",
	"QQQQQQQ#     #QQQQQQQ",
	"  QQQQQ#######QQQQQ",
}

var ubuntuLogo = []string{
	"            .-/+oossssoo+/-.",
	"        `:+ssssssssssssssssss+:`",
	"      -+ssssssssssssssssssyyssss+-",
	"    .ossssssssssssssssssdMMMNysssso.",
	"   /ssssssssssshdmmNNmmyNMMMMhssssss/",
	"  +ssssssssshmydMMMMMMMNddddyssssssss+",
	" /sssssssshNMMMyhhyyyyhmNMMMNhssssssss/",
	".ssssssssdMMMNhsssssssssshNMMMdssssssss.",
	"+sssshhhyNMMNyssssssssssssyNMMMysssssss+",
	"ossyNMMMNyMMhsssssssssssssshmmmhssssssso",
	"ossyNMMMNyMMhsssssssssssssshmmmhssssssso",
	"+sssshhhyNMMNyssssssssssssyNMMMysssssss+",
	".ssssssssdMMMNhsssssssssshNMMMdssssssss.",
	" /sssssssshNMMMyhhyyyyhdNMMMNhssssssss/",
	"  +sssssssssdmydMMMMMMMMddddyssssssss+",
	"   /ssssssssssshdmNNNNmyNMMMMhssssss/",
	"    .ossssssssssssssssssdMMMNysssso.",
	"      -+sssssssssssssssssyyyssss+-",
	"        `:+ssssssssssssssssss+:`",
	"            .-/+oossssoo+/-.",
}

var archLogo = []string{
	"                   -`",
	"                  .o+`",
	"                 `ooo/",
	"                `+oooo:",
	"               `+oooooo:",
	"               -+oooooo+:",
	"             `/:-:++oooo+:",
	"            `/++++/+++++++:",
	"           `/++++++++++++++:",
	"          `/+++ooooooooooooo/`",
	"         ./ooosssso++osssssso+`",
	"        .oossssso-````/ossssss+`",
	"       -osssssso.      :ssssssso.",
	"      :osssssss/        osssso+++.",
	"     /ossssssss/        +ssssooo/-",
	"   `/ossssso+/:-        -:/+osssso+-",
	"  `+sso+:-`                 `.-/+oso:",
	" `++:.                           `-/+/",
	" .`                                 `/",
}

var debianLogo = []string{
	"       _,met$$$$$gg.",
	"    ,g$$$$$$$$$$$$$$$P.",
	"  ,g$$P\"     \"\"\"Y$$.\".",
	" ,$$P'              `$$$.",
	"',$$P       ,ggs.     `$$b:",
	"`d$$'     ,$P\"'   .    $$$",
	" $$P      d$'     ,    $$P",
	" $$:      $$.   -    ,d$$'",
	" $$;      Y$b._   _,d$P'",
	" Y$$.    `.`\"Y$$$$P\"'",
	" `$$b      \"-.__",
	"  `Y$$",
	"   `Y$$.",
	"     `$$b.",
	"       `Y$$b.",
	"          `\"Y$b._",
	"              `\"\"\"",
}

var fedoraLogo = []string{
	"          /:-------------:\\",
	"       :-------------------::",
	"     :-----------/shhOHbmp---:\\",
	"   /-----------omMMMNNNMMD  ---:",
	"  :-----------sMMMMNMNMP.    ---:",
	" :-----------:MMMdP-------    ---\\",
	",------------:MMMd--------    ---:",
	":------------:MMMd-------    .---:",
	":----    oNMMMMMMMMMNho     .----:",
	":--     .+shhhMMMmhhy++   .------/",
	":-    -------:MMMd--------------:",
	":-   --------/MMMd-------------;",
	":-    ------/hMMMy------------:",
	":-- :dMNdhhdNMMNo------------;",
	":---:sdNMMMMNds:------------:",
	":------:://:-------------::",
	":---------------------://",
}
