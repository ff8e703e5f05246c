package sqlinline

const QInsertUsageEvent = `--sql a46b702d-0ba3-474d-93be-d791a1912f21
insert into usage_events(id, user_id, request_id, event_type, success, latency_ms, country, locale, created_at, properties)
values (gen_random_uuid(), $1::uuid, nullif($2::text, '')::uuid, $3::text, $4::boolean, $5::int, nullif($6::text, ''), nullif($7::text, ''), now(), coalesce($8::jsonb, '{}'::jsonb));
`
