package http

import (
	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser"
)

const dueDateLayout = "2006-01-02"

type parseReq struct {
	Text        string `json:"text" binding:"required"`
	Timezone    string `json:"timezone"`
	DateFormat  string `json:"date_format" binding:"omitempty,oneof=MDY DMY YMD"`
	StartOfWeek *int   `json:"start_of_week" binding:"omitempty,oneof=0 1"`
}

// toInput builds the usecase input, falling back to the handler's
// defaults for settings the request leaves empty.
func (r parseReq) toInput(defaults model.UserSettings) parser.ParseInput {
	settings := defaults
	if r.Timezone != "" {
		settings.Timezone = r.Timezone
	}
	if r.DateFormat != "" {
		settings.DateFormat = model.DateFormat(r.DateFormat)
	}
	if r.StartOfWeek != nil {
		settings.StartOfWeek = *r.StartOfWeek
	}
	return parser.ParseInput{
		RawText:  r.Text,
		Settings: settings,
	}
}

type projectResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullPath string `json:"fullPath"`
	Color    string `json:"color"`
}

type tagResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type highlightResp struct {
	Type          string `json:"type"`
	Text          string `json:"text"`
	StartPosition int    `json:"startPosition"`
	EndPosition   int    `json:"endPosition"`
	Value         any    `json:"value"`
	Valid         bool   `json:"valid"`
}

type parseResp struct {
	Title      string          `json:"title"`
	DueDate    *string         `json:"due_date"`
	DueTime    *string         `json:"due_time"`
	HasTime    bool            `json:"has_time"`
	Project    *projectResp    `json:"project"`
	Tags       []tagResp       `json:"tags"`
	Priority   *int            `json:"priority"`
	Highlights []highlightResp `json:"highlights"`
	Warnings   []string        `json:"warnings"`
}

func (h handler) newParseResp(res parser.ParseResult) parseResp {
	out := parseResp{
		Title:      res.Title,
		HasTime:    res.HasTime,
		Priority:   res.Priority,
		Tags:       make([]tagResp, 0, len(res.Tags)),
		Highlights: make([]highlightResp, 0, len(res.Highlights)),
		Warnings:   res.Warnings,
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}

	if res.DueDate != nil {
		d := res.DueDate.Format(dueDateLayout)
		out.DueDate = &d
	}
	if res.DueTime != "" {
		t := res.DueTime
		out.DueTime = &t
	}
	if res.Project != nil {
		out.Project = &projectResp{
			ID:       res.Project.ID,
			Name:     res.Project.Name,
			FullPath: res.Project.FullPath,
			Color:    res.Project.Color,
		}
	}
	for _, tag := range res.Tags {
		out.Tags = append(out.Tags, tagResp{
			ID:    tag.ID,
			Name:  tag.Name,
			Color: tag.Color,
		})
	}
	for _, hl := range res.Highlights {
		out.Highlights = append(out.Highlights, highlightResp{
			Type:          string(hl.Kind),
			Text:          hl.Text,
			StartPosition: hl.StartPos,
			EndPosition:   hl.EndPos,
			Value:         hl.Value,
			Valid:         hl.Valid,
		})
	}
	return out
}
