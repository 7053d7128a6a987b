package cmd

const rootLongDescription = `Uniconv turns plain ASCII text into fancy Unicode letterings such as
full width forms and the Mathematical Alphanumeric Symbols block.

Without a subcommand it starts an interactive loop. Every line typed is
converted with the current converter, printed and copied to the clipboard.
Lines starting with '/' are commands:
  /set <converter>   switch converter (or /<converter>)
  /<converter> text  convert one line with another converter
  /list              list converters and aliases
  /help [command]    show help
  /quit              leave`

const convertLongDescription = `Convert the given text once and copy the result to the clipboard.

When no text is given, every line read from standard input is converted.
With --all the text is rendered by every converter side by side.`

const listLongDescription = "List all available converters and the aliases they can be selected with."

const rulesLongDescription = `Show the conversion rules of a converter.

Rules are consulted from last to first, so a later rule overrides an
earlier one where their ranges overlap.`
