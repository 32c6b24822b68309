package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
)

const (
	chartWidth  = 900
	chartHeight = 450
	panelWidth  = chartWidth / 2
)

// EmotionChart is one emotion's comparison image: reference dataset scores on
// the left, the current learned scores on the right.
type EmotionChart struct {
	EmotionName string `json:"emotion_name"`
	// Image is a base64-encoded PNG.
	Image string `json:"image"`
}

type ChartRenderer struct {
	scores    *ScoreStore
	titleFace font.Face
	labelFace font.Face
	log       *logger.Logger
}

func NewChartRenderer(scores *ScoreStore, log *logger.Logger) (*ChartRenderer, error) {
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing chart font: %w", err)
	}
	return &ChartRenderer{
		scores:    scores,
		titleFace: truetype.NewFace(fnt, &truetype.Options{Size: 18}),
		labelFace: truetype.NewFace(fnt, &truetype.Options{Size: 11}),
		log:       log,
	}, nil
}

// RenderAll builds one chart per canonical emotion. Emotions missing from the
// store are skipped, not fatal, so a partially seeded database still renders.
func (r *ChartRenderer) RenderAll() ([]EmotionChart, error) {
	identifiers := models.ColourIdentifiers()
	charts := make([]EmotionChart, 0, len(models.ReferenceEmotionNames()))

	for _, name := range models.ReferenceEmotionNames() {
		system, err := r.scores.GetScores(name, identifiers)
		if errors.Is(err, ErrEmotionNotFound) {
			r.log.Warn("emotion missing from store, skipping chart", "emotion", name)
			continue
		}
		if err != nil {
			return nil, err
		}

		reference := models.ReferenceScoresFor(name)
		dataset := make([]ColourValue, 0, len(identifiers))
		for _, id := range identifiers {
			dataset = append(dataset, ColourValue{Colour: id, Score: reference[id]})
		}

		image, err := r.renderComparison(name, dataset, system)
		if err != nil {
			return nil, fmt.Errorf("rendering chart for %s: %w", name, err)
		}
		charts = append(charts, EmotionChart{EmotionName: name, Image: image})
	}
	return charts, nil
}

func (r *ChartRenderer) renderComparison(emotionName string, dataset, system []ColourValue) (string, error) {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// lightblue / lightgreen panels, as on the original results page
	r.drawBars(dc, 0, "Dataset - "+emotionName, dataset, 0.68, 0.85, 0.90)
	r.drawBars(dc, panelWidth, "System - "+emotionName, system, 0.56, 0.93, 0.56)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (r *ChartRenderer) drawBars(dc *gg.Context, originX float64, title string, values []ColourValue, br, bg, bb float64) {
	const (
		marginLeft   = 40.0
		marginTop    = 50.0
		marginBottom = 80.0
	)
	plotWidth := float64(panelWidth) - marginLeft - 20
	plotHeight := float64(chartHeight) - marginTop - marginBottom
	baseY := marginTop + plotHeight

	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(r.titleFace)
	dc.DrawStringAnchored(title, originX+float64(panelWidth)/2, marginTop/2, 0.5, 0.5)

	if len(values) == 0 {
		return
	}

	slot := plotWidth / float64(len(values))
	barWidth := slot * 0.7

	dc.SetFontFace(r.labelFace)
	for i, v := range values {
		x := originX + marginLeft + float64(i)*slot + (slot-barWidth)/2
		height := (v.Score / maxScore) * plotHeight

		dc.SetRGB(br, bg, bb)
		dc.DrawRectangle(x, baseY-height, barWidth, height)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		labelX := x + barWidth/2
		labelY := baseY + 10
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), labelX, labelY)
		dc.DrawStringAnchored(v.Colour, labelX, labelY, 1, 0.5)
		dc.Pop()
	}

	// axis line
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(originX+marginLeft, baseY, originX+marginLeft+plotWidth, baseY)
	dc.Stroke()
}
