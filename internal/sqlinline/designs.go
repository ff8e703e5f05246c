package sqlinline

const QInsertDesign = `--sql 00f810fa-0859-4bbe-a6a6-94a983d0ae07
insert into designs(id, user_id, design_type, area_id, style_id, palette_id, paint_color_id, prompt, image_url, created_at)
values ($1::uuid, $2::uuid, $3::text, $4::text, nullif($5::text, ''), nullif($6::text, ''), nullif($7::text, ''), $8::text, $9::text, $10::timestamptz);
`

const QListDesignsByUser = `--sql 76add2de-b301-43c2-ae2a-a1d7d4af2c9b
select id, user_id, design_type, area_id, coalesce(style_id, ''), coalesce(palette_id, ''), coalesce(paint_color_id, ''), prompt, image_url, created_at
from designs
where user_id = $1::uuid
order by created_at desc
limit $2::int;
`

const QSelectDesignByID = `--sql 25b514cd-a766-47d9-8095-4c80cb72331a
select id, user_id, design_type, area_id, coalesce(style_id, ''), coalesce(palette_id, ''), coalesce(paint_color_id, ''), prompt, image_url, created_at
from designs
where id = $1::uuid and user_id = $2::uuid;
`

const QDeleteDesign = `--sql 5ba35fcc-fc0a-4edf-b031-5c2c695de77f
delete from designs
where id = $1::uuid and user_id = $2::uuid;
`
