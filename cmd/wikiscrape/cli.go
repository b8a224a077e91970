package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/wikiscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   wikiscrape.Fetcher
	Extractor wikiscrape.Extractor
	Sanitizer wikiscrape.Sanitizer
}

// CLI defines the command-line interface structure for Kong. It only
// documents the arguments; wikiscrape.ParseTopic interprets them.
type CLI struct {
	Topic []string `arg:"" optional:"" help:"Wikipedia topic name; spaces need no quoting"`
}

// LookupCmd fetches a topic and prints its introductory paragraph.
type LookupCmd struct {
	Topic string
}

const description = `Find a topic on Wikipedia's EN site and print its introductory paragraph.

The topic can be given in any of these forms:

    wikiscrape [/topic | -topic | --topic] topicName
    wikiscrape [/topic | -topic | --topic](= | :)topicName
    wikiscrape topicName

Examples:

    wikiscrape /topic:Babe Ruth
    wikiscrape --topic=Babe Ruth
    wikiscrape Babe Ruth

Usage is shown for any of -? --? /? -h[elp] --h[elp] /h[elp] as the first argument.

The topic name does not need to be enclosed in quotes if there are spaces. If the topic is not found, a message saying so is displayed. If no topic name is provided, you will be prompted for one. The program can be exited at any time by pressing Ctrl-C.`
