/*Package terminfo reads the binary terminfo database used by
ncurses-compatible terminals and compiles/evaluates the parameterized
string capabilities found inside those entries.

A Database indexes the terminfo files under a root directory (typically
/usr/share/terminfo) and materializes an Entry on demand. An Entry exposes
a terminal's boolean, numeric and string capabilities, including ncurses'
"extended" user-defined capabilities. A Terminal compiles a capability
string into a Program, which can be executed with a set of parameters to
produce the concrete byte sequence a terminal expects (e.g. "move cursor
to row R, column C").

Reading a terminfo file, decoding the ncurses extended section, and
running the term(5) parameter-string language are the hard parts; this
package does not attempt to walk /usr/share/terminfo on its own beyond
what Database needs, does not touch termios or any other terminal I/O
device control, and does not implement a curses-like drawing layer.
*/
package terminfo
