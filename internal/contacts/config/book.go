package config

// BookConfig содержит настройки адресной книги.
type BookConfig struct {
	BatchSize       int `yaml:"batch_size" env:"CONTACTS_BOOK_BATCH_SIZE" env-default:"5"`
	BirthdaysWindow int `yaml:"birthdays_window_days" env:"CONTACTS_BIRTHDAYS_WINDOW_DAYS" env-default:"7"`
}

// CLIConfig содержит настройки интерфейса командной строки.
type CLIConfig struct {
	Prompt string `yaml:"prompt" env:"CONTACTS_CLI_PROMPT" env-default:"contacts>"`
}
