package http

import (
	"travel-planner/internal/weather"
)

// --- Request DTOs ---

type setCityReq struct {
	City string `json:"city"`
}

// --- Response DTOs ---

type locationResp struct {
	Name      string  `json:"name"`
	Flag      string  `json:"flag"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

type dayResp struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Code    int     `json:"code"`
	Icon    string  `json:"icon"`
	TempMin float64 `json:"temp_min"`
	TempMax float64 `json:"temp_max"`
}

type snapshotResp struct {
	City     string        `json:"city"`
	Status   string        `json:"status"`
	Location *locationResp `json:"location,omitempty"`
	Days     []dayResp     `json:"days"`
	Error    string        `json:"error,omitempty"`
}

func newSnapshotResp(snap weather.Snapshot) snapshotResp {
	resp := snapshotResp{
		City:   snap.City,
		Status: string(snap.Status),
		Days:   make([]dayResp, len(snap.Days)),
		Error:  snap.Err,
	}
	if snap.Location != nil {
		resp.Location = &locationResp{
			Name:      snap.Location.Name,
			Flag:      snap.Location.Flag,
			Latitude:  snap.Location.Latitude,
			Longitude: snap.Location.Longitude,
			Timezone:  snap.Location.Timezone,
		}
	}
	for i, d := range snap.Days {
		resp.Days[i] = dayResp{
			Date:    d.Date,
			Label:   d.Label,
			Code:    d.Code,
			Icon:    d.Icon,
			TempMin: d.TempMin,
			TempMax: d.TempMax,
		}
	}
	return resp
}
