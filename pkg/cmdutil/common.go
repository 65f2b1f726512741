package cmdutil

// PassphraseEmbed is embedded by sub-commands that protect a capture
// file with a passphrase (encrypt/decrypt). Leaving Passphrase empty on
// the command line triggers ResolvePassword's interactive prompt.
type PassphraseEmbed struct {
	Passphrase string `required:"" type:"password" env:"HCIMON_PASSPHRASE" help:"Passphrase protecting the capture file"`
}
