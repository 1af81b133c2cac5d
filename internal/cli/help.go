package cli

// usageText is printed by --help.
const usageText = `Echoer - echoes command-line arguments to stdout/stderr.

Usage: echoer <commands> [options]

Options:
  --help     Displays how the tool is supposed to be used.
  --debug    Only prints out the commands as they would be executed,
             doesn't actually run them.

Commands (can repeat, executed in order):
  -out <TEXT>         Echo the text to stdout.
  -err <TEXT>         Echo the text to stderr.
  -env <VAR_NAME>     Echo $VAR_NAME to stdout (if variable is set).
                      If variable is not set exit with error.
  -wait <INTEGER>     Wait for the specified number of seconds (0-86400).
  -exit <INTEGER>     Exit with the specified exit code.

Environment:
  ECHOER_LOG_LEVEL    Diagnostic log level on stderr: debug, info, warn, error.
  ECHOER_COLOR        Color stderr output: auto, always, never.
  NO_COLOR            Disable color when set.

Examples:
- Count down to stdout, 'GO!' to stderr, with one second delay:
  echoer -out 3 -wait 1 -out 2 -wait 1 -out 1 -wait 1 -err GO!

- Print the message, wait one minute, and exit with error 5:
  echoer -out "Working ..." -wait 60 -exit 5

- Exit command should go last, otherwise nothing after it is executed:
  echoer -exit 1 -out Ignored -wait 5 -out "Also ignored"`
