package command

const noCSVDirectoryMessage = "No CSV directory found to backup."
const csvBackupCreatedMessage = "CSV backup created at %s"
