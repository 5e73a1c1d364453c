package internal

// Version is the current wordly release
const Version = "0.3.1"
