package main

const helpTextTemplate = `NAME:
   {{.Name}}{{if .Usage}} - {{.Usage}}{{end}}

USAGE:
   influx-backup [--debug] [command] [arguments...]

   Running influx-backup without a command backs up InfluxDB.{{if .Version}}{{if not .HideVersion}}

VERSION:
   {{.Version}}{{end}}{{end}}{{if .VisibleCommands}}

COMMANDS:{{range .VisibleCategories}}{{if .Name}}
   {{.Name}}:{{end}}{{range .VisibleCommands}}
   {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}

GLOBAL OPTIONS:
   {{range $index, $option := .VisibleFlags}}{{if $index}}
   {{end}}{{$option}}{{end}}{{end}}

ENVIRONMENT:
   BACKUP_INFLUX_TOKEN   InfluxDB token passed to 'influx backup'
   CSV_SOURCE_DIR        Default --source for the csv command
   BACKUP_DIR            Default --destination for the csv command
`
