package engine

import (
	"strings"

	"fedboard/internal/member"
)

// 提示词构建。system 描述委员人设，user 携带经济简报与作答格式要求。

func buildSystemPrompt(m member.Member) string {
	var b strings.Builder
	b.WriteString("You are " + m.Name + ", " + string(m.Role) + " of the Federal Reserve.\n\n")
	b.WriteString("## Your Role\n")
	b.WriteString(m.DisplayTitle() + ". You are participating in a Federal Open Market Committee (FOMC) meeting to decide on monetary policy.\n\n")
	if m.Background != "" {
		b.WriteString("## Your Background\n" + m.Background + "\n\n")
	}
	b.WriteString("## Your Policy Stance\n")
	b.WriteString("You are generally considered a " + stanceDescription(m.Stance) + " ")
	if len(m.Priorities) > 0 {
		b.WriteString("Your key policy priorities are: " + strings.Join(m.Priorities, ", ") + ".")
	}
	b.WriteString("\n\n")
	if len(m.ExpertiseAreas) > 0 {
		b.WriteString("## Your Areas of Expertise\n" + strings.Join(m.ExpertiseAreas, ", ") + "\n\n")
	}
	if len(m.KeyConcerns) > 0 {
		b.WriteString("## Your Key Concerns\nWhen evaluating monetary policy, you particularly focus on:\n")
		for _, c := range m.KeyConcerns {
			b.WriteString("- " + c + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("## Your Communication Style\n")
	b.WriteString("You communicate in a " + string(m.Style) + " manner. " + styleGuidance(m.Style) + "\n\n")
	if len(m.NotableQuotes) > 0 {
		b.WriteString("## Notable Quotes\nThese quotes reflect your typical viewpoints:\n")
		for _, q := range m.NotableQuotes {
			b.WriteString("- \"" + q + "\"\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("## Guidelines\n")
	b.WriteString("Be data-driven: base your analysis on the economic data provided. ")
	b.WriteString("Weigh both sides of the dual mandate, price stability and maximum employment. ")
	b.WriteString("Acknowledge uncertainty and consider both upside and downside risks.\n")
	return b.String()
}

func stanceDescription(s member.Stance) string {
	switch s {
	case member.StanceHawk:
		return "monetary policy hawk, meaning you tend to prioritize fighting inflation and are more inclined to support higher interest rates."
	case member.StanceDove:
		return "monetary policy dove, meaning you tend to prioritize supporting employment and economic growth, and are more patient with inflation."
	default:
		return "centrist on monetary policy, meaning you balance inflation concerns against employment concerns and are data-dependent."
	}
}

func styleGuidance(s member.CommunicationStyle) string {
	switch s {
	case member.StyleMeasured:
		return "You choose your words carefully and present balanced views."
	case member.StyleDirect:
		return "You speak plainly and state your views clearly, even when controversial."
	case member.StyleAcademic:
		return "You reference economic theory and research and are comfortable with technical language."
	case member.StyleDataDriven:
		return "You build your arguments around specific data points and statistics."
	case member.StylePragmatic:
		return "You focus on practical outcomes rather than theoretical purity."
	}
	return ""
}

func buildVotePrompt(req Request) string {
	var b strings.Builder
	b.WriteString("## Economic Briefing\n\n")
	b.WriteString(req.Snapshot.Briefing())
	b.WriteString("\n\n## Current Policy\n\n")
	b.WriteString("The current federal funds target range is " + req.RateLower.StringFixed(2) + "% to " + req.RateUpper.StringFixed(2) + "%.\n\n")
	b.WriteString("## Your Vote\n\n")
	b.WriteString("Based on the data above, decide on the appropriate policy action for this meeting. ")
	b.WriteString("You must respond with a JSON object in exactly this format:\n\n")
	b.WriteString("```json\n{\n")
	b.WriteString("    \"action\": \"cut\" | \"hold\" | \"raise\",\n")
	b.WriteString("    \"magnitudeBps\": <positive multiple of 25; omit when action is \"hold\">,\n")
	b.WriteString("    \"confidence\": <0.0 to 1.0>,\n")
	b.WriteString("    \"keyFactors\": [\"<factor 1>\", \"<factor 2>\"],\n")
	b.WriteString("    \"reasoning\": \"<2-4 sentences explaining your vote>\"\n")
	b.WriteString("}\n```\n\n")
	b.WriteString("Be concise but clear about your reasoning.")
	return b.String()
}

func buildProjectionPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("## Economic Briefing\n\n")
	b.WriteString(req.Snapshot.Briefing())
	b.WriteString("\n\n## Rate Projections\n\n")
	b.WriteString("The current federal funds target range is " + req.RateLower.StringFixed(2) + "% to " + req.RateUpper.StringFixed(2) + "%.\n\n")
	b.WriteString("Provide your projections for the appropriate federal funds rate at the end of each period. ")
	b.WriteString("Respond with a JSON object:\n\n")
	b.WriteString("```json\n{\n")
	b.WriteString("    \"year_end_2025\": <rate>,\n")
	b.WriteString("    \"year_end_2026\": <rate>,\n")
	b.WriteString("    \"year_end_2027\": <rate>,\n")
	b.WriteString("    \"longer_run\": <rate>\n")
	b.WriteString("}\n```")
	return b.String()
}
