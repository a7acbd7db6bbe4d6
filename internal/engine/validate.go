package engine

import (
	"encoding/json"
	"strings"

	"fedboard/internal/pkg/jsonutil"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

// 中文说明：
// 投票响应的结构校验分两层：jsonschema 管字段形状，这里再补充业务不变量
// （幅度必须是 25 的正整数倍，且只在 cut/raise 时出现）。

const voteSchemaJSON = `{
  "type": "object",
  "required": ["action", "confidence", "reasoning"],
  "properties": {
    "action": {"type": "string", "enum": ["cut", "hold", "raise"]},
    "magnitudeBps": {"type": "integer"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "keyFactors": {"type": "array", "items": {"type": "string"}},
    "reasoning": {"type": "string", "minLength": 1}
  }
}`

var voteSchema = jsonschema.MustCompileString("vote.json", voteSchemaJSON)

// ParseVoteDecision 从模型原始输出解析并校验一张选票。
func ParseVoteDecision(memberID, raw string) (VoteDecision, error) {
	payload, ok := jsonutil.ExtractObject(raw)
	if !ok {
		return VoteDecision{}, invalidf("no JSON object in response for %s", memberID)
	}
	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return VoteDecision{}, invalidf("malformed JSON for %s: %v", memberID, err)
	}
	if err := voteSchema.Validate(doc); err != nil {
		return VoteDecision{}, invalidf("vote schema violation for %s: %v", memberID, err)
	}

	parsed := gjson.Parse(payload)
	vd := VoteDecision{
		MemberID:   memberID,
		Action:     Action(strings.ToLower(parsed.Get("action").String())),
		Confidence: parsed.Get("confidence").Float(),
		Reasoning:  strings.TrimSpace(parsed.Get("reasoning").String()),
	}
	for _, f := range parsed.Get("keyFactors").Array() {
		if s := strings.TrimSpace(f.String()); s != "" {
			vd.KeyFactors = append(vd.KeyFactors, s)
		}
	}
	if mag := parsed.Get("magnitudeBps"); mag.Exists() {
		vd.MagnitudeBps = int(mag.Int())
	}
	if err := vd.CheckInvariants(); err != nil {
		return VoteDecision{}, err
	}
	return vd, nil
}

// CheckInvariants 校验选票的业务不变量。
func (v VoteDecision) CheckInvariants() error {
	if !v.Action.Valid() {
		return invalidf("unknown action %q from %s", v.Action, v.MemberID)
	}
	if v.Action == ActionHold {
		if v.MagnitudeBps != 0 {
			return invalidf("hold vote from %s carries magnitude %d", v.MemberID, v.MagnitudeBps)
		}
	} else {
		if v.MagnitudeBps <= 0 || v.MagnitudeBps%25 != 0 {
			return invalidf("%s vote from %s needs a positive multiple of 25 bps, got %d", v.Action, v.MemberID, v.MagnitudeBps)
		}
	}
	if v.Confidence < 0 || v.Confidence > 1 {
		return invalidf("confidence out of range from %s: %v", v.MemberID, v.Confidence)
	}
	return nil
}

// ParseProjection 解析点阵图预测，缺失的年份按当前利率回填由调用方决定。
func ParseProjection(memberID, raw string) (Projection, error) {
	payload, ok := jsonutil.ExtractObject(raw)
	if !ok {
		return Projection{}, invalidf("no JSON object in projection response for %s", memberID)
	}
	parsed := gjson.Parse(payload)
	rates := make(map[string]float64)
	for key, out := range map[string]string{
		"year_end_2025": "2025",
		"year_end_2026": "2026",
		"year_end_2027": "2027",
		"longer_run":    "longer_run",
	} {
		if v := parsed.Get(key); v.Exists() && v.Type == gjson.Number {
			rates[out] = v.Float()
		}
	}
	if len(rates) == 0 {
		return Projection{}, invalidf("projection response for %s has no usable rates", memberID)
	}
	return Projection{MemberID: memberID, Rates: rates}, nil
}
