package main

import (
	"github.com/hettlage/superlists/internal/command"
	"github.com/hettlage/superlists/internal/command/collectstatic"
	"github.com/hettlage/superlists/internal/command/deploy"
	"github.com/hettlage/superlists/internal/command/migrate"
)

func main() {
	command.Main(
		"superlists", "superlists maintenance tasks",
		deploy.Command(),
		migrate.Command(),
		collectstatic.Command(),
	)
}
