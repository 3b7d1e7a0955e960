// Package report renders analysis results.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text for terminal display, optionally colored
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//
// Writers only ever see a model.Report, which holds results and labels but
// never the analyzed passwords.
package report
