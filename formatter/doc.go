// Package formatter compiles ulog format strings into templates.
//
// A format string is free text with placeholders of the form &(NAME)%:
//
//	&(level)%   the record level, colored on terminals when enabled
//	&(msg)%     the message parts concatenated without separator
//	&(time)%    the text returned by the handler's Clock
//	&(name)%    the logger name
//	&(fnname)%  the function name passed by the caller, or "unknownfn"
//
// Compile scans the string once, left to right, with no regular
// expressions and no backtracking. Recognized placeholders become an
// ordered list of FieldKind values; the text between them is kept as
// literal segments, so a stray percent sign in the format string is
// copied through untouched. Placeholders with an unknown name are left
// verbatim in the output. An opening "&(" with no closing ")%" is a
// compile error.
//
// Every compiled template ends in a newline.
package formatter
