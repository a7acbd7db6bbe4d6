package render

import (
	"fmt"
	"strings"

	"fedboard/internal/engine"
	"fedboard/internal/meeting"
	"fedboard/internal/member"
)

// 中文说明：
// 按联储纪要的行文套路渲染会议纪要（Markdown）。
// 投票名单保持记录里的名册顺序，反对票附上偏好说明。

// Minutes 渲染一次会议记录的纪要文本。
func Minutes(rec meeting.MeetingRecord, roster []member.Member) string {
	names := make(map[string]member.Member, len(roster))
	for _, m := range roster {
		names[m.ID] = m
	}
	displayName := func(id string) string {
		if m, ok := names[id]; ok {
			return m.Name
		}
		return id
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# FOMC Meeting Minutes: %s\n\n", periodTitle(rec.Period))
	b.WriteString("A joint meeting of the Federal Open Market Committee and the Board of Governors ")
	b.WriteString("was held in the offices of the Board of Governors.\n\n")

	b.WriteString("## Staff Review of the Economic Situation\n\n")
	writeEconomicReview(&b, rec)

	b.WriteString("## Committee Policy Action\n\n")
	fmt.Fprintf(&b, "In support of the Committee's goals of maximum employment and inflation at the rate "+
		"of 2 percent over the longer run, members agreed to %s, to %s. Members agreed that, in "+
		"considering the extent and timing of additional adjustments to the target range for the "+
		"federal funds rate, the Committee would carefully assess incoming data, the evolving "+
		"outlook, and the balance of risks.\n\n",
		actionClause(rec.FinalAction, rec.MagnitudeBps), rec.FinalRange.String())

	b.WriteString("## Vote\n\n")
	writeVotingRecord(&b, rec, displayName)

	if len(rec.Projections) > 0 {
		b.WriteString("## Summary of Economic Projections\n\n")
		writeProjectionSummary(&b, rec.Projections)
	}

	b.WriteString("---\n")
	b.WriteString("*Simulated minutes. Not an official Federal Reserve publication.*\n")
	return b.String()
}

func periodTitle(period string) string {
	year, month, err := meeting.ParsePeriod(period)
	if err != nil {
		return period
	}
	months := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	return fmt.Sprintf("%s %d", months[month-1], year)
}

func actionClause(action engine.Action, bps int) string {
	switch action {
	case engine.ActionRaise:
		return fmt.Sprintf("raise the target range for the federal funds rate by %d basis points", bps)
	case engine.ActionCut:
		return fmt.Sprintf("lower the target range for the federal funds rate by %d basis points", bps)
	default:
		return "maintain the target range for the federal funds rate"
	}
}

func writeEconomicReview(b *strings.Builder, rec meeting.MeetingRecord) {
	snap := rec.Snapshot
	var facts []string
	if v := snap.Inflation.CorePCEYoY; v != nil {
		facts = append(facts, fmt.Sprintf("core PCE inflation was running at %.1f percent", *v))
	}
	if v := snap.Employment.UnemploymentRate; v != nil {
		facts = append(facts, fmt.Sprintf("the unemployment rate stood at %.1f percent", *v))
	}
	if v := snap.Activity.GDPGrowth; v != nil {
		facts = append(facts, fmt.Sprintf("real GDP grew at an annualized pace of %.1f percent", *v))
	}
	if len(facts) == 0 {
		b.WriteString("The information available at the time of the meeting was incomplete.\n\n")
		return
	}
	b.WriteString("The information available at the time of the meeting indicated that ")
	b.WriteString(strings.Join(facts, ", and "))
	b.WriteString(".\n\n")
}

func writeVotingRecord(b *strings.Builder, rec meeting.MeetingRecord, displayName func(string) string) {
	dissent := make(map[string]bool, len(rec.Dissenters))
	for _, id := range rec.Dissenters {
		dissent[id] = true
	}
	var forNames, againstNames []string
	for _, v := range rec.Votes {
		if dissent[v.MemberID] {
			againstNames = append(againstNames, displayName(v.MemberID)+", "+dissentReason(v, rec))
			continue
		}
		forNames = append(forNames, displayName(v.MemberID))
	}
	fmt.Fprintf(b, "**Voting for this action:** %s.\n\n", strings.Join(forNames, "; "))
	if len(againstNames) > 0 {
		fmt.Fprintf(b, "**Voting against this action:** %s.\n\n", strings.Join(againstNames, "; "))
	}
	fmt.Fprintf(b, "The vote was %d to %d.\n\n", rec.Tally.For, rec.Tally.Against)
}

func dissentReason(v engine.VoteDecision, rec meeting.MeetingRecord) string {
	switch {
	case v.Action == engine.ActionRaise:
		return "who preferred to raise the target range"
	case v.Action == engine.ActionCut && rec.FinalAction == engine.ActionCut && v.MagnitudeBps > rec.MagnitudeBps:
		return "who preferred a larger reduction in the target range"
	case v.Action == engine.ActionCut:
		return "who preferred to lower the target range"
	default:
		return "who preferred to maintain the target range"
	}
}

func writeProjectionSummary(b *strings.Builder, projections []engine.Projection) {
	b.WriteString("| Period | Median | Range |\n|---|---|---|\n")
	for _, key := range projectionKeys {
		rates := collectRates(projections, key.key)
		if len(rates) == 0 {
			continue
		}
		fmt.Fprintf(b, "| %s | %.2f%% | %.2f-%.2f%% |\n",
			key.label, median(rates), minOf(rates), maxOf(rates))
	}
	b.WriteString("\n")
}
