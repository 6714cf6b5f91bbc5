package main

import "strings"

// findValueFlags are the find flags that consume the following argument
var findValueFlags = map[string]bool{
	"-f": true, "--filename": true,
	"-i": true, "--in-file": true,
	"-r": true, "--root": true,
}

// normalizeArgs moves find flags written after NAME in front of it, so both
// "find NAME --sort" and "find --sort NAME" work. Everything after "--" is
// left in place.
func normalizeArgs(args []string) []string {
	cmdIdx := -1
	for i := 1; i < len(args); i++ {
		if args[i] == "find" {
			cmdIdx = i
			break
		}
		if !strings.HasPrefix(args[i], "-") {
			// Some other command
			return args
		}
		if (args[i] == "-c" || args[i] == "--config" || args[i] == "--log-format") && i+1 < len(args) {
			i++
		}
	}
	if cmdIdx < 0 {
		return args
	}

	tail := args[cmdIdx+1:]
	flags := make([]string, 0, len(tail))
	positionals := make([]string, 0, len(tail))

	for i := 0; i < len(tail); i++ {
		arg := tail[i]
		if arg == "--" {
			positionals = append(positionals, tail[i:]...)
			break
		}
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			if takesValue(arg) && i+1 < len(tail) {
				flags = append(flags, tail[i+1])
				i++
			}
			continue
		}
		positionals = append(positionals, arg)
	}

	out := make([]string, 0, len(args))
	out = append(out, args[:cmdIdx+1]...)
	out = append(out, flags...)
	out = append(out, positionals...)
	return out
}

// takesValue reports whether arg consumes the next argument. A combined short
// cluster such as -si does when its last letter is a value flag.
func takesValue(arg string) bool {
	if findValueFlags[arg] {
		return true
	}
	if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' && !strings.Contains(arg, "=") {
		return findValueFlags["-"+arg[len(arg)-1:]]
	}
	return false
}
