package repository

// Schema — DDL таблиц тренировок. Применяется командой setupdb,
// в Supabase тот же скрипт можно выполнить через SQL Editor.
const Schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS public.workouts (
    id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    date       date NOT NULL,
    user_id    text NOT NULL,
    username   text,
    raw_input  text,
    created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS public.exercises (
    id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    workout_id    uuid NOT NULL REFERENCES public.workouts(id) ON DELETE CASCADE,
    name          text NOT NULL,
    activity_type text NOT NULL DEFAULT 'exercise',
    notes         text
);

CREATE TABLE IF NOT EXISTS public.exercise_sets (
    id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    exercise_id uuid NOT NULL REFERENCES public.exercises(id) ON DELETE CASCADE,
    set_number  int NOT NULL
);

CREATE TABLE IF NOT EXISTS public.exercise_metrics (
    id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    set_id      uuid NOT NULL REFERENCES public.exercise_sets(id) ON DELETE CASCADE,
    metric_type text NOT NULL,
    value       double precision NOT NULL,
    unit        text
);

CREATE INDEX IF NOT EXISTS workouts_user_created_idx
    ON public.workouts (user_id, created_at DESC);

CREATE INDEX IF NOT EXISTS workouts_user_date_idx
    ON public.workouts (user_id, date);
`
