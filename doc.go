// Package conscolor negotiates and renders console text colors.
//
// A Console determines once, on first use, what color encoding its target
// actually supports (from TERM/COLORTERM on POSIX terminals, or by querying
// the native console directly) and translates abstract foreground and
// background requests into that encoding: SGR escape sequences, a Windows
// console attribute word, or a firmware text-output attribute.
package conscolor
