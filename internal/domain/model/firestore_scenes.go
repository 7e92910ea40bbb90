package model

import "time"

// FirestoreScene Firestore 保存用のシーン
// Firestore は配列の直接の入れ子を扱えないため、リング座標は平坦化して保持する
type FirestoreScene struct {
	Origin        Origin           `firestore:"origin"`
	Scale         float64          `firestore:"scale"`
	Layers        []FirestoreLayer `firestore:"layers"`
	MissingLayers []LayerFailure   `firestore:"missing_layers"`
	CreatedAt     time.Time        `firestore:"createdAt"`
	ExpireAt      time.Time        `firestore:"expireAt"`
}

type FirestoreLayer struct {
	Key               string          `firestore:"key"`
	Label             string          `firestore:"label"`
	Color             string          `firestore:"color"`
	PopupText         string          `firestore:"popup_text"`
	FeatureCount      int             `firestore:"feature_count"`
	SkippedFeatures   int             `firestore:"skipped_features"`
	MalformedFeatures int             `firestore:"malformed_features"`
	Bound             []float64       `firestore:"bound"` // [minX, minY, maxX, maxY]
	Rings             []FirestoreRing `firestore:"rings"`
}

type FirestoreRing struct {
	FeatureIndex int       `firestore:"feature_index"`
	Coordinates  []float64 `firestore:"coordinates"` // [x0, y0, x1, y1, ...]
}
