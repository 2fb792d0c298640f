package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/orel33/tsp/distmat"
	"github.com/orel33/tsp/solver"
)

// sysInfo records the basic system information attached to solution reports.
type sysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// solutionReport is the JSON document written by `tsp solve --report`.
type solutionReport struct {
	Size     int     `json:"size"`
	First    int     `json:"first"`
	Optimize bool    `json:"optimize"`
	Tour     []int   `json:"tour"`
	Cities   string  `json:"cities"`
	Distance int     `json:"distance"`
	Explored uint64  `json:"explored"`
	Time     string  `json:"time"`
	System   sysInfo `json:"system"`
}

func newSolutionReport(p *solver.Problem, res solver.Result, elapsed time.Duration) solutionReport {
	cities := res.Tour.Cities()
	letters := make([]string, len(cities))
	for i, c := range cities {
		letters[i] = distmat.CityName(c)
	}

	return solutionReport{
		Size:     p.Size(),
		First:    p.Start(),
		Optimize: p.Options().Optimize,
		Tour:     cities,
		Cities:   strings.Join(letters, "-"),
		Distance: res.Tour.Dist(),
		Explored: res.Explored,
		Time:     elapsed.String(),
		System:   collectSysInfo(),
	}
}

// collectSysInfo gathers host facts on a best-effort basis; lookup failures
// leave the corresponding field empty rather than failing the report.
func collectSysInfo() sysInfo {
	var info sysInfo
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}

func writeReport(path string, rep solutionReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
