// Package executor runs the external programs autokanshi drives: the screen
// layout editor, swaymsg and the kanshi reload command.
//
// Shell commands come from the settings file and are run through "sh -c" so
// they may carry arguments, pipes or environment assignments.
package executor
