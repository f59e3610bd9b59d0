package db

// PageSetKey is the key the whole page set is stored under.
const PageSetKey = "pageSet"

const PageSetDecodeError = "stored page set is not readable"
